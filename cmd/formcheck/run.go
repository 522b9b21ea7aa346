package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/napalu/goopt/v2"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/fieldpath"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/rules"
)

const (
	exitPassed = 0
	exitFailed = 1
	exitUsage  = 2
)

var errReadingData = errors.New("failed to read data document")

type flags struct {
	Rules    string `goopt:"name:rules;short:r;required:true;desc:Rules document (YAML or JSON)"`
	Data     string `goopt:"name:data;short:d;required:true;desc:Data document (YAML or JSON)"`
	Field    string `goopt:"name:field;short:f;desc:Validate only this field path"`
	Language string `goopt:"name:lang;desc:Message language (overrides FORMKIT_LANGUAGE)"`
	Messages string `goopt:"name:messages;short:m;desc:Message catalog file or directory (overrides FORMKIT_MESSAGES_PATH)"`
	Help     bool   `goopt:"name:help;short:h;desc:Show this help message"`
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cli, ok := parseFlags(args, stdout, stderr)
	if cli == nil {
		return exitUsage
	}
	if cli.Help {
		return exitPassed
	}
	if !ok {
		return exitUsage
	}

	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(stderr, "formcheck: %v\n", err)
		return exitUsage
	}
	if cli.Language != "" {
		settings.Language = cli.Language
	}
	if cli.Messages != "" {
		settings.MessagesPath = cli.Messages
	}

	opts, err := form.OptionsFromSettings(ctx, settings)
	if err != nil {
		fmt.Fprintf(stderr, "formcheck: %v\n", err)
		return exitUsage
	}
	log := opts.Logger

	tree, err := rules.ParseFile(cli.Rules)
	if err != nil {
		log.ErrorContext(ctx, "failed to load rules", logger.Error(err))
		return exitUsage
	}
	data, err := readData(cli.Data)
	if err != nil {
		log.ErrorContext(ctx, "failed to load data", logger.Error(err))
		return exitUsage
	}

	opts.Rules = tree
	f := form.New(opts)

	var passed bool
	if cli.Field != "" {
		value, _ := fieldpath.Get(data, cli.Field)
		passed = f.OnBlur(form.FieldEvent{Name: cli.Field, Value: value})
	} else {
		passed, err = f.OnSubmit(ctx, data)
		if err != nil {
			log.ErrorContext(ctx, "validation interrupted", logger.Error(err))
			return exitUsage
		}
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f.Result()); err != nil {
		log.ErrorContext(ctx, "failed to write result", logger.Error(err))
		return exitUsage
	}

	log.InfoContext(ctx, "validation finished", logger.FormID(f.ID()), logger.Passed(passed))
	if !passed {
		return exitFailed
	}
	return exitPassed
}

// parseFlags returns nil when the parser cannot be built. Usage is printed
// for --help and on parse errors.
func parseFlags(args []string, stdout, stderr io.Writer) (*flags, bool) {
	cli := &flags{}
	parser, err := goopt.NewParserFromStruct(cli,
		goopt.WithAutoHelp(false),
		goopt.WithAutoVersion(false),
	)
	if err != nil {
		fmt.Fprintf(stderr, "formcheck: %v\n", err)
		return nil, false
	}
	parser.SetAutoLanguage(false)
	parser.SetStdout(stdout)
	parser.SetStderr(stderr)

	ok := parser.Parse(args)
	if cli.Help {
		parser.PrintUsage(stdout)
		return cli, ok
	}
	if !ok {
		for _, perr := range parser.GetErrors() {
			fmt.Fprintf(stderr, "formcheck: %v\n", perr)
		}
		parser.PrintUsage(stderr)
	}
	return cli, ok
}

// readData decodes a YAML or JSON document into nested maps.
func readData(path string) (map[string]any, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(errReadingData, err)
	}
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(errReadingData, err)
	}
	if data == nil {
		data = map[string]any{}
	}
	return data, nil
}
