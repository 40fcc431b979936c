// Copyright 2025 The Medassist Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/adi-1505/medassist"
	"github.com/adi-1505/medassist/core"
	"github.com/adi-1505/medassist/wellness"
)

func main() {
	app := &cli.App{
		Name:  "medassist",
		Usage: "Search a built-in medical knowledge base and assemble advisory responses",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "ask",
				Usage:     "Answer a medical question with the full response bundle",
				ArgsUsage: "QUERY",
				Action:    askCommand,
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:    "medication",
						Aliases: []string{"m"},
						Usage:   "Current medication (repeatable); enables interaction warnings",
					},
					&cli.IntFlag{
						Name:  "age",
						Usage: "Patient age",
					},
					&cli.StringFlag{
						Name:  "gender",
						Usage: "Patient gender",
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Show the raw ranked search results for a query",
				ArgsUsage: "QUERY",
				Action:    searchCommand,
			},
			{
				Name:      "interactions",
				Usage:     "Check a list of medications for documented interactions",
				ArgsUsage: "MEDICATION...",
				Action:    interactionsCommand,
			},
			{
				Name:   "bmi",
				Usage:  "Calculate body mass index",
				Action: bmiCommand,
				Flags: []cli.Flag{
					&cli.Float64Flag{
						Name:     "weight-kg",
						Usage:    "Weight in kilograms",
						Required: true,
					},
					&cli.Float64Flag{
						Name:     "height-cm",
						Usage:    "Height in centimeters",
						Required: true,
					},
				},
			},
			{
				Name:   "tip",
				Usage:  "Print today's health tip",
				Action: tipCommand,
			},
			{
				Name:   "stats",
				Usage:  "Print knowledge base statistics",
				Action: statsCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

func queryFromArgs(c *cli.Context) (string, error) {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return "", fmt.Errorf("a query is required")
	}
	return query, nil
}

func askCommand(c *cli.Context) error {
	query, err := queryFromArgs(c)
	if err != nil {
		return err
	}

	assistant, err := medassist.New()
	if err != nil {
		return err
	}
	defer assistant.Close()

	var patient *core.PatientContext
	if medications := c.StringSlice("medication"); len(medications) > 0 || c.Int("age") > 0 || c.String("gender") != "" {
		patient = &core.PatientContext{
			Age:         c.Int("age"),
			Gender:      c.String("gender"),
			Medications: medications,
		}
	}

	printBundle(assistant.Ask(query, patient))
	return nil
}

func searchCommand(c *cli.Context) error {
	query, err := queryFromArgs(c)
	if err != nil {
		return err
	}

	assistant, err := medassist.New()
	if err != nil {
		return err
	}
	defer assistant.Close()

	results := assistant.Search(query)
	fmt.Printf("Found %d hits\n", len(results))
	for i, hit := range results {
		fmt.Printf("%d: %q (%s)[%.1f, %s]\n", i+1, hit.Title(), hit.Type, hit.Score, hit.Relevance)
	}
	return nil
}

func interactionsCommand(c *cli.Context) error {
	medications := c.Args().Slice()
	if len(medications) == 0 {
		return fmt.Errorf("at least one medication name is required")
	}

	assistant, err := medassist.New()
	if err != nil {
		return err
	}
	defer assistant.Close()

	records := assistant.CheckInteractions(medications)
	if len(records) == 0 {
		fmt.Println("No known major interactions found in our database.")
		fmt.Println("Always consult your pharmacist or doctor for comprehensive interaction checking.")
		return nil
	}

	for _, record := range records {
		fmt.Printf("%s interaction: %s + %s\n", record.Severity, record.Primary, record.Partner)
		fmt.Printf("  Mechanism:  %s\n", record.Mechanism)
		fmt.Printf("  Management: %s\n", record.Management)
	}
	return nil
}

func bmiCommand(c *cli.Context) error {
	value, err := wellness.BMI(c.Float64("weight-kg"), c.Float64("height-cm"))
	if err != nil {
		return err
	}
	fmt.Printf("BMI: %.1f (%s)\n", value, wellness.CategoryForBMI(value))
	return nil
}

func tipCommand(_ *cli.Context) error {
	fmt.Printf("Today's tip: %s\n", wellness.TipOfDay(time.Now()))
	return nil
}

func statsCommand(_ *cli.Context) error {
	assistant, err := medassist.New()
	if err != nil {
		return err
	}
	defer assistant.Close()

	stats := assistant.Store().Stats()
	fmt.Printf("Conditions:   %d\n", stats.Conditions)
	fmt.Printf("Drugs:        %d\n", stats.Drugs)
	fmt.Printf("Symptoms:     %d\n", stats.Symptoms)
	fmt.Printf("Interactions: %d\n", stats.Interactions)
	return nil
}
