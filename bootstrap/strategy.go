package bootstrap

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownStrategy = errors.New("unknown block bootstrap strategy")

// Strategy selects how block start positions are drawn.
type Strategy int

const (
	// MovingBlock keeps every block inside the series bounds.
	MovingBlock Strategy = iota
	// CircularBlock lets blocks wrap from the end of the series back to its start.
	CircularBlock
)

func (s Strategy) String() string {
	switch s {
	case MovingBlock:
		return "moving_block"
	case CircularBlock:
		return "circular_block"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy accepts the strategy names and their short forms "mb" and "cb".
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "moving_block", "mb":
		return MovingBlock, nil
	case "circular_block", "cb":
		return CircularBlock, nil
	}
	return 0, fmt.Errorf("%q, %w", name, ErrUnknownStrategy)
}

func (s Strategy) MarshalText() ([]byte, error) {
	switch s {
	case MovingBlock, CircularBlock:
		return []byte(s.String()), nil
	}
	return nil, fmt.Errorf("%d, %w", int(s), ErrUnknownStrategy)
}

func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
