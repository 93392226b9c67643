package nav

import (
	"fmt"
	"strings"
)

// Command is a textual GoTo: level:destination[:child], e.g. "line:next",
// "stanza:previous:first" or "item:3".
type Command struct {
	Level       Level
	Destination Destination
	Child       Destination
}

// ParseCommand parses one command. Unknown destinations parse successfully
// and make the command a no-op, matching GoTo.
func ParseCommand(s string) (Command, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Command{}, fmt.Errorf("invalid command %q (want level:destination[:child])", s)
	}
	level, err := ParseLevel(parts[0])
	if err != nil {
		return Command{}, err
	}
	if strings.TrimSpace(parts[1]) == "" {
		return Command{}, fmt.Errorf("invalid command %q: missing destination", s)
	}
	c := Command{Level: level, Destination: ParseDestination(parts[1])}
	if len(parts) == 3 {
		c.Child = ParseDestination(parts[2])
	}
	return c, nil
}

// ParseCommands parses each of args.
func ParseCommands(args []string) ([]Command, error) {
	cmds := make([]Command, 0, len(args))
	for _, a := range args {
		c, err := ParseCommand(a)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, c)
	}
	return cmds, nil
}

func (c Command) String() string {
	s := c.Level.String() + ":" + c.Destination.String()
	if c.Child.IsSet() {
		s += ":" + c.Child.String()
	}
	return s
}
