package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrianliechti/text2speech/pkg/client"

	"github.com/google/uuid"
)

func main() {
	urlFlag := flag.String("url", "http://localhost:8080", "server url")
	saveFlag := flag.Bool("save", false, "request audio as download")

	flag.Parse()

	ctx := context.Background()

	c := client.New(*urlFlag)

	reader := bufio.NewReader(os.Stdin)
	output := os.Stdout

LOOP:
	for {
		output.WriteString(">>> ")
		input, err := reader.ReadString('\n')

		if err != nil {
			return
		}

		input = strings.TrimSpace(input)

		if input == "" {
			continue LOOP
		}

		var synthesis *client.Synthesis

		if *saveFlag {
			synthesis, err = c.Syntheses.Save(ctx, input)
		} else {
			synthesis, err = c.Syntheses.Convert(ctx, input)
		}

		if err != nil {
			output.WriteString(err.Error() + "\n")
			continue LOOP
		}

		name := fileName(synthesis)

		if err := os.WriteFile(name, synthesis.Content, 0600); err != nil {
			output.WriteString(err.Error() + "\n")
			continue LOOP
		}

		fmt.Println("Saved: " + name)

		output.WriteString("\n")
	}
}

func fileName(synthesis *client.Synthesis) string {
	if name := filepath.Base(synthesis.Filename); synthesis.Filename != "" && name != "." && name != "/" {
		if _, err := os.Stat(name); os.IsNotExist(err) {
			return name
		}

		ext := filepath.Ext(name)
		return strings.TrimSuffix(name, ext) + "-" + uuid.New().String() + ext
	}

	name := uuid.New().String()

	if ext, _ := mime.ExtensionsByType(synthesis.ContentType); len(ext) > 0 {
		return name + ext[0]
	}

	return name + ".mp3"
}
