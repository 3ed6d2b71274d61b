// Package interactive provides the interactive command-line interface
// for the vesync-bridge daemon.
package interactive

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/vesync-bridge/vesync-go/pkg/humidifier"
	"github.com/vesync-bridge/vesync-go/pkg/platform"
	"github.com/vesync-bridge/vesync-go/pkg/vesync"
)

// Console handles interactive mode for vesync-bridge. Entities are
// addressed by their index in the `list` output.
type Console struct {
	registry *platform.Registry
	bus      *platform.Dispatcher
	devices  []vesync.Device
	rl       *readline.Instance
}

// New creates a new interactive console.
func New(registry *platform.Registry, bus *platform.Dispatcher, devices []vesync.Device) (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "bridge> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Console{
		registry: registry,
		bus:      bus,
		devices:  devices,
		rl:       rl,
	}, nil
}

// Run reads and executes commands until exit or EOF.
func (c *Console) Run() error {
	defer c.rl.Close()

	c.printHelp()

	for {
		line, err := c.rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		args := strings.Fields(strings.TrimSpace(line))
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "help":
			c.printHelp()
		case "list":
			c.cmdList()
		case "state":
			c.cmdState(args[1:])
		case "mode":
			c.cmdMode(args[1:])
		case "humidity":
			c.cmdHumidity(args[1:])
		case "on":
			c.cmdOn(args[1:])
		case "announce":
			c.cmdAnnounce()
		case "exit", "quit":
			return nil
		default:
			fmt.Printf("unknown command %q, try 'help'\n", args[0])
		}
	}
}

func (c *Console) printHelp() {
	fmt.Println(`commands:
  list                      list registered entities
  state <n>                 show entity state snapshot
  mode <n> <mode>           set mode (auto|sleep|normal|eco|boost)
  humidity <n> <pct>        set target humidity
  on <n> [pct] [mode]       turn on, optionally with humidity and mode
  announce                  re-announce the device fleet
  help                      show this help
  exit                      quit`)
}

// entity resolves a 1-based index from the list output.
func (c *Console) entity(arg string) (*humidifier.Entity, error) {
	idx, err := strconv.Atoi(arg)
	if err != nil {
		return nil, fmt.Errorf("not an entity index: %q", arg)
	}

	entities := c.registry.Entities()
	if idx < 1 || idx > len(entities) {
		return nil, fmt.Errorf("no entity %d (have %d)", idx, len(entities))
	}

	e, ok := entities[idx-1].(*humidifier.Entity)
	if !ok {
		return nil, fmt.Errorf("entity %d is not a humidifier", idx)
	}
	return e, nil
}

func (c *Console) cmdList() {
	entities := c.registry.Entities()
	if len(entities) == 0 {
		fmt.Println("no entities registered")
		return
	}
	for i, e := range entities {
		state := "unknown"
		if s, ok := c.registry.EntityState(e.UniqueID()); ok {
			state = s.State
		}
		fmt.Printf("  %d. %s [%s] %s\n", i+1, e.Name(), e.DeviceClass(), state)
	}
}

func (c *Console) cmdState(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: state <n>")
		return
	}
	e, err := c.entity(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	state, err := e.State()
	if err != nil {
		fmt.Printf("state read failed: %v\n", err)
		return
	}

	fmt.Printf("%s: %s\n", e.Name(), state.State)
	keys := make([]string, 0, len(state.Attributes))
	for k := range state.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %s: %v\n", k, state.Attributes[k])
	}
}

func (c *Console) cmdMode(args []string) {
	if len(args) != 2 {
		fmt.Println("usage: mode <n> <auto|sleep|normal|eco|boost>")
		return
	}
	e, err := c.entity(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	if err := e.SetMode(humidifier.Mode(args[1])); err != nil {
		fmt.Printf("set mode failed: %v\n", err)
		return
	}
	c.registry.Flush()
	fmt.Println("ok")
}

func (c *Console) cmdHumidity(args []string) {
	if len(args) != 2 {
		fmt.Println("usage: humidity <n> <pct>")
		return
	}
	e, err := c.entity(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	pct, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Printf("not a percentage: %q\n", args[1])
		return
	}

	if err := e.SetHumidity(pct); err != nil {
		fmt.Printf("set humidity failed: %v\n", err)
		return
	}
	c.registry.Flush()
	fmt.Println("ok")
}

func (c *Console) cmdOn(args []string) {
	if len(args) < 1 || len(args) > 3 {
		fmt.Println("usage: on <n> [pct] [mode]")
		return
	}
	e, err := c.entity(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	var opts []humidifier.TurnOnOption
	for _, arg := range args[1:] {
		if pct, err := strconv.Atoi(arg); err == nil {
			opts = append(opts, humidifier.WithHumidity(pct))
		} else {
			opts = append(opts, humidifier.WithMode(humidifier.Mode(arg)))
		}
	}

	if err := e.TurnOn(opts...); err != nil {
		fmt.Printf("turn on failed: %v\n", err)
		return
	}
	c.registry.Flush()
	fmt.Println("ok")
}

func (c *Console) cmdAnnounce() {
	c.bus.Dispatch(vesync.DiscoveryTopic(vesync.KindHumidifiers), c.devices)
	fmt.Printf("announced %d device(s)\n", len(c.devices))
}
