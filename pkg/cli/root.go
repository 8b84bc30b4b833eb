package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/tangfuhao/loginkit/pkg/catalog"
	"github.com/tangfuhao/loginkit/pkg/field"
	"github.com/tangfuhao/loginkit/pkg/form"
	"github.com/tangfuhao/loginkit/pkg/forms"
	"github.com/tangfuhao/loginkit/pkg/i18n"
	"github.com/tangfuhao/loginkit/pkg/logger"
	"github.com/tangfuhao/loginkit/pkg/validator"
)

// Execute runs the tool with args, where args[0] is the program name.
func Execute(ctx context.Context, args []string, opts ...Option) error {
	return New(opts...).Run(ctx, args)
}

// New builds the root command.
func New(opts ...Option) *cli.Command {
	o := newOptions(opts...)
	return &cli.Command{
		Name:                  "loginkit",
		Usage:                 "Validate login and signup input",
		EnableShellCompletion: true,
		Writer:                o.out,
		ErrWriter:             o.logOut,
		Commands: []*cli.Command{
			signupCmd(o),
			loginCmd(o),
		},
	}
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "input",
			Aliases: []string{"i"},
			Usage:   "YAML or JSON file with field values keyed by field id",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   string(FormatYAML),
			Usage:   "Report format (yaml, json)",
		},
		&cli.StringFlag{
			Name:  "lang",
			Usage: "Preferred message language; BCP 47 tags and Accept-Language lists are accepted",
		},
		&cli.StringFlag{Name: "email", Usage: "Email address (email variant)"},
		&cli.StringFlag{Name: "username", Usage: "User name (username_phone variant)"},
		&cli.StringFlag{Name: "password", Usage: "Password"},
	}
}

// session holds everything one command run needs.
type session struct {
	cfg    Config
	cat    *catalog.Catalog
	tr     *i18n.Translator
	lang   string
	format Format
	log    *slog.Logger
	input  map[string]string
}

func newSession(ctx context.Context, cmd *cli.Command, o *options, ids []string) (*session, error) {
	format, err := parseFormat(cmd.String("format"))
	if err != nil {
		return nil, err
	}

	cfg, err := loadConfig(o.env)
	if err != nil {
		return nil, err
	}
	log := newLogger(cfg, o).With(logger.Variant(cfg.Catalog.Variant))

	cat, err := catalog.New(cfg.Catalog, catalog.WithLogger(log))
	if err != nil {
		return nil, err
	}
	tr, err := cat.Translator(ctx)
	if err != nil {
		return nil, err
	}

	lang := tr.DefaultLanguage()
	if pref := cmd.String("lang"); pref != "" {
		lang = tr.Match(pref)
	}

	input, err := collectInput(cmd, ids)
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:    cfg,
		cat:    cat,
		tr:     tr,
		lang:   lang,
		format: format,
		log:    log,
		input:  input,
	}, nil
}

func (s *session) formOptions() []form.Option {
	return []form.Option{
		form.WithLogger(s.log),
		form.WithTranslator(s.tr, s.lang),
	}
}

// screen is what the commands need from forms.Signup and forms.Login.
type screen interface {
	Field(id string) (*field.Field, bool)
	SetDisplay(id string, sink form.DisplaySink) error
	Missing() []string
}

// fill writes the collected input into the screen and captures the messages
// pushed to the display sinks.
func (s *session) fill(sc screen, ids []string, messages map[string]string) error {
	for _, id := range ids {
		f, ok := sc.Field(id)
		if !ok {
			continue
		}
		if err := sc.SetDisplay(id, func(m *string) {
			if m == nil {
				delete(messages, id)
				return
			}
			messages[id] = *m
		}); err != nil {
			return err
		}
		if v, ok := s.input[id]; ok {
			f.SetText(v)
		}
	}
	return nil
}

func (s *session) report(name string, sc screen, outcome validator.Outcome, missing bool, messages map[string]string) *Report {
	r := &Report{
		Form:     name,
		Variant:  string(s.cat.Variant()),
		Language: s.lang,
		Valid:    !missing && outcome.IsValid(),
		Messages: messages,
	}

	if missing {
		r.Missing = sc.Missing()
		for _, id := range r.Missing {
			err := validator.NewError(id, validator.CodeRequired, nil)
			r.Messages[id] = s.tr.Td(s.lang, err.TranslationKey, err.Message, err.TranslationValues)
		}
	}

	if !outcome.IsValid() {
		r.Codes = make(map[string][]string)
		for _, e := range outcome.Errors {
			r.Codes[e.Field] = append(r.Codes[e.Field], string(e.Code))
		}
	}

	if len(r.Messages) == 0 {
		r.Messages = nil
	}
	return r
}

func (s *session) finish(ctx context.Context, cmd *cli.Command, r *Report) error {
	if err := r.write(cmd.Root().Writer, s.format); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	if !r.Valid {
		ids := slices.Sorted(maps.Keys(r.Messages))
		s.log.DebugContext(ctx, "input rejected", logger.Fields(ids...))
		return ErrInvalidInput
	}
	return nil
}

// missingInput reports whether err only says that some fields were never set.
func missingInput(err error) (bool, error) {
	if err == nil {
		return false, nil
	}
	if errors.Is(err, forms.ErrMissingInput) {
		return true, nil
	}
	return false, err
}
