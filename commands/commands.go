package commands

import (
	"io"
	"log"
	"slices"
	"strings"
)

type cmd func()

// Commands maps names to the operations the host can run.
type Commands struct {
	log      *log.Logger
	commands map[string]cmd
}

func NewCommands(logger *log.Logger) *Commands {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Commands{log: logger, commands: make(map[string]cmd)}
}

// Exec runs the command named command. When there is no exact match the
// longest registered name starting with command is used.
func (c *Commands) Exec(command string) bool {
	if cmd := c.findCommandByLongestPrefix(command); cmd != nil {
		cmd()
		return true
	}
	c.log.Printf("Command %s not found\n", command)
	return false
}

func (c *Commands) findCommandByLongestPrefix(commandPrefix string) cmd {
	if cmd, ok := c.commands[commandPrefix]; ok {
		return cmd
	}
	longest := ""
	var longestCmd cmd
	for _, name := range c.Names() {
		if strings.HasPrefix(name, commandPrefix) && len(name) > len(longest) {
			longest = name
			longestCmd = c.commands[name]
		}
	}
	return longestCmd
}

func (c *Commands) Register(name string, command func()) {
	c.commands[name] = command
}

// Names returns the registered names in sorted order.
func (c *Commands) Names() []string {
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
