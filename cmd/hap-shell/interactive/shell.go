// Package interactive provides the interactive command loop for
// hap-shell.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/hap-protocol/hap-go/pkg/inspect"
	"github.com/hap-protocol/hap-go/pkg/log"
	"github.com/hap-protocol/hap-go/pkg/model"
	"github.com/hap-protocol/hap-go/pkg/store"
)

// Shell handles interactive mode for hap-shell.
type Shell struct {
	db        *model.Accessories
	file      *store.Database
	logger    log.Logger
	inspector *inspect.Inspector
	formatter *inspect.Formatter
	rl        *readline.Instance
	out       io.Writer
}

// New creates a new interactive shell over the given database. The
// file store may be nil when no database file is open yet.
func New(db *model.Accessories, file *store.Database, logger log.Logger) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "hap> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	if logger == nil {
		logger = log.NoopLogger{}
	}

	return &Shell{
		db:        db,
		file:      file,
		logger:    logger,
		inspector: inspect.NewInspector(db),
		formatter: inspect.NewFormatter(),
		rl:        rl,
		out:       rl.Stdout(),
	}, nil
}

// Stdout returns a writer that properly coordinates with the readline
// input. Use this for log output to avoid interfering with the prompt.
func (s *Shell) Stdout() io.Writer {
	return s.out
}

// Run starts the interactive command loop.
func (s *Shell) Run(ctx context.Context, cancel context.CancelFunc) {
	defer s.rl.Close()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return
		}

		if !s.dispatch(line) {
			cancel()
			return
		}
	}
}

// dispatch parses and executes one command line. It reports false when
// the shell should exit.
func (s *Shell) dispatch(input string) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return true
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()

	case "load":
		s.cmdLoad(args)

	case "save":
		s.cmdSave(args)

	case "list", "l":
		s.cmdList()

	case "show":
		s.cmdShow(args)

	case "services":
		s.cmdServices(args)

	case "find", "f":
		s.cmdFind(args)

	case "linked":
		s.cmdLinked(args)

	case "value", "v":
		s.cmdValue(args)

	case "hash":
		s.cmdHash()

	case "new":
		s.cmdNew(args)

	case "quit", "exit", "q":
		fmt.Fprintln(s.out, "Exiting...")
		return false

	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return true
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
HAP Database Commands:
  File:
    load <path>        - Load a database file
    save [path]        - Save the database (optionally to a new path)
    hash               - Show the database content hash

  Inspection:
    list               - Show the full accessory tree
    show <aid>         - Show one accessory
    services <aid>     - List the services of an accessory
    linked <aid> <iid> - Show the services a service links to
    find <type>        - Find services by type across all accessories

  Editing:
    new <name> <manufacturer> <model> <serial> <firmware>
                       - Add an accessory with an information service
    value <aid> <iid> [new-value]
                       - Read or write a characteristic value

  General:
    help               - Show this help
    exit               - Leave the shell

  Types can be catalog names, short hex codes or full UUIDs:
    find lightbulb    find 43    find 00000043-0000-1000-8000-0026BB765291`)
}

// cmdLoad handles the load command.
func (s *Shell) cmdLoad(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.out, "Usage: load <path>")
		return
	}

	file := store.NewDatabase(args[0], s.logger)
	db, err := file.Load()
	if err != nil {
		fmt.Fprintf(s.out, "Load failed: %v\n", err)
		return
	}
	if db == nil {
		db = model.NewAccessories()
		s.setDatabase(db, file)
		fmt.Fprintf(s.out, "No database at %s, starting empty\n", args[0])
		return
	}

	s.setDatabase(db, file)
	fmt.Fprintf(s.out, "Loaded %d accessories from %s\n", db.Len(), args[0])
}

func (s *Shell) setDatabase(db *model.Accessories, file *store.Database) {
	s.db = db
	s.file = file
	s.inspector = inspect.NewInspector(db)
}

// cmdSave handles the save command.
func (s *Shell) cmdSave(args []string) {
	if len(args) > 0 {
		s.file = store.NewDatabase(args[0], s.logger)
	}
	if s.file == nil {
		fmt.Fprintln(s.out, "No database file open. Usage: save <path>")
		return
	}

	if err := s.file.Save(s.db); err != nil {
		fmt.Fprintf(s.out, "Save failed: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Saved %d accessories to %s\n", s.db.Len(), s.file.Path())
}

// cmdList handles the list command.
func (s *Shell) cmdList() {
	tree := s.inspector.InspectDatabase()
	fmt.Fprint(s.out, s.formatter.FormatDatabase(tree))
}

// cmdShow handles the show command.
func (s *Shell) cmdShow(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.out, "Usage: show <aid>")
		return
	}

	aid, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid aid: %v\n", err)
		return
	}

	info, err := s.inspector.InspectAccessory(aid)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprint(s.out, s.formatter.FormatAccessory(info))
}

// cmdServices handles the services command.
func (s *Shell) cmdServices(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.out, "Usage: services <aid>")
		return
	}

	aid, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid aid: %v\n", err)
		return
	}

	info, err := s.inspector.InspectAccessory(aid)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}

	for _, svc := range info.Services {
		name := svc.Name
		if name == "" {
			name = inspect.DisplayServiceType(svc.Type)
		}
		fmt.Fprintf(s.out, "  [%d] %s - %d characteristics\n", svc.IID, name, len(svc.Characteristics))
	}
}

// cmdFind handles the find command.
func (s *Shell) cmdFind(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.out, "Usage: find <service-type>")
		fmt.Fprintln(s.out, "  Example: find lightbulb")
		return
	}

	query := model.ServiceQuery{Type: args[0]}
	found := 0
	for _, acc := range s.db.Accessories() {
		for _, svc := range acc.FilterServices(query) {
			fmt.Fprintf(s.out, "  accessory %d, service %d: %s\n",
				acc.AID(), svc.IID(), inspect.DisplayServiceType(svc.Type()))
			found++
		}
	}
	if found == 0 {
		fmt.Fprintln(s.out, "No matching services")
	}
}

// cmdLinked handles the linked command.
func (s *Shell) cmdLinked(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(s.out, "Usage: linked <aid> <iid>")
		return
	}

	aid, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid aid: %v\n", err)
		return
	}
	iid, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid iid: %v\n", err)
		return
	}

	info, err := s.inspector.InspectService(aid, iid)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	if len(info.Linked) == 0 {
		fmt.Fprintln(s.out, "No linked services")
		return
	}

	for _, linkedIID := range info.Linked {
		linked, err := s.inspector.InspectService(aid, linkedIID)
		if err != nil {
			fmt.Fprintf(s.out, "  [%d] (missing)\n", linkedIID)
			continue
		}
		fmt.Fprint(s.out, s.formatter.FormatService(linked))
	}
}

// cmdValue handles the value command.
func (s *Shell) cmdValue(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(s.out, "Usage: value <aid> <iid> [new-value]")
		fmt.Fprintln(s.out, "  Example: value 2 9 true")
		return
	}

	aid, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid aid: %v\n", err)
		return
	}
	iid, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid iid: %v\n", err)
		return
	}

	acc, err := s.db.AID(aid)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	char, err := acc.CharacteristicByIID(iid)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}

	name := inspect.DisplayCharacteristicType(char.Type())
	if len(args) == 2 {
		fmt.Fprintf(s.out, "%s = %s\n", name, s.formatter.FormatValue(char.Value(), char.Unit()))
		return
	}

	value := parseValue(strings.Join(args[2:], " "))
	if err := char.SetValue(value); err != nil {
		fmt.Fprintf(s.out, "Write failed: %v\n", err)
		return
	}

	s.logger.Log(log.Event{
		Timestamp: time.Now(),
		Source:    log.SourceDatabase,
		Category:  log.CategoryMutation,
		AID:       aid,
		IID:       iid,
		Mutation: &log.MutationEvent{
			Kind:  log.MutationSetValue,
			Type:  char.Type(),
			Value: char.Value(),
		},
	})
	fmt.Fprintf(s.out, "%s = %s\n", name, s.formatter.FormatValue(char.Value(), char.Unit()))
}

// cmdHash handles the hash command.
func (s *Shell) cmdHash() {
	hash, err := store.HashDocument(s.db.Document())
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, hash)
}

// cmdNew handles the new command.
func (s *Shell) cmdNew(args []string) {
	if len(args) < 5 {
		fmt.Fprintln(s.out, "Usage: new <name> <manufacturer> <model> <serial> <firmware>")
		fmt.Fprintln(s.out, "  Example: new DeskLamp Acme LS1 0001 1.0.0")
		return
	}

	acc, err := model.NewAccessoryWithInfo(args[0], args[1], args[2], args[3], args[4])
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	s.db.Add(acc)

	s.logger.Log(log.Event{
		Timestamp: time.Now(),
		Source:    log.SourceDatabase,
		Category:  log.CategoryMutation,
		AID:       acc.AID(),
		Mutation:  &log.MutationEvent{Kind: log.MutationAddAccessory},
	})
	fmt.Fprintf(s.out, "Accessory %d created\n", acc.AID())
}

// parseValue tries int, then float, then bool, falling back to a
// quote-stripped string.
func parseValue(raw string) any {
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return v
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return v
	}
	if v, err := strconv.ParseBool(raw); err == nil {
		return v
	}
	return strings.Trim(raw, "\"'")
}
