package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"

	"course-support-agent/internal/bootstrap"
	"course-support-agent/internal/config"
	"course-support-agent/internal/dto"
	"course-support-agent/pkg/catalog"
	"course-support-agent/pkg/database"
	"course-support-agent/pkg/rag/response"
)

// Interactive terminal client. Same pipeline as the REST server, without
// the HTTP layer.
func main() {
	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container, err := bootstrap.NewContainer(gormDB, cfg)
	if err != nil {
		log.Panicf("Unable to bootstrap container: %v", err)
	}
	defer container.Log.Sync()

	records, err := catalog.LoadFile(cfg.Catalog.Path)
	if err != nil {
		log.Panicf("Unable to load course catalog: %v", err)
	}

	units := catalog.BuildUnits(records)
	if err := container.Index.Build(context.Background(), units); err != nil {
		log.Panicf("Unable to build catalog index: %v", err)
	}

	cyan := color.New(color.FgCyan, color.Bold)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	cyan.Printf("Course catalog assistant (%d courses loaded)\n", len(units))
	fmt.Println("Ask about our courses. Type 'quit', 'exit' or 'bye' to leave.")
	fmt.Printf("Answer languages: english, hindi, tamil, telugu, kannada, malayalam (default english)\n\n")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		green.Print("You: ")
		if !scanner.Scan() {
			break
		}

		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}

		switch strings.ToLower(question) {
		case "quit", "exit", "bye":
			fmt.Println("Goodbye!")
			return
		}

		// "lang: hindi How do I ..." switches the answer language inline.
		language := response.LangEnglish
		if rest, ok := strings.CutPrefix(question, "lang:"); ok {
			fields := strings.Fields(rest)
			if len(fields) > 1 {
				language = fields[0]
				question = strings.Join(fields[1:], " ")
			}
		}

		res, err := container.ChatService.Ask(context.Background(), &dto.AskRequest{
			Question: question,
			Language: language,
		})
		if err != nil {
			yellow.Printf("Something went wrong: %v\n\n", err)
			continue
		}

		cyan.Print("Assistant: ")
		fmt.Printf("%s\n", res.Response)
		yellow.Printf("[%s | relevant=%t | score=%.2f]\n\n", res.Language, res.HasRelevantInfo, res.RelevanceScore)
	}
}
