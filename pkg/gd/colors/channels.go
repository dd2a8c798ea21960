package colors

import (
	"fmt"
	"strconv"
	"strings"
)

// ID references a color channel. Regular channels are numbered 1-999,
// everything from 1000 up is a channel the game manages itself.
type ID int

const (
	BG      ID = 1000
	G       ID = 1001
	Line    ID = 1002
	Line3D  ID = 1003
	Obj     ID = 1004
	P1      ID = 1005
	P2      ID = 1006
	LBG     ID = 1007
	G2      ID = 1009
	Black   ID = 1010
	White   ID = 1011
	Lighter ID = 1012
)

const MaxChannel ID = 999

var specialNames = map[ID]string{
	BG:      "BG",
	G:       "G",
	Line:    "Line",
	Line3D:  "3DL",
	Obj:     "Obj",
	P1:      "P1",
	P2:      "P2",
	LBG:     "LBG",
	G2:      "G2",
	Black:   "Black",
	White:   "White",
	Lighter: "Lighter",
}

var specialIDs = map[string]ID{}

func init() {
	for id, name := range specialNames {
		specialIDs[strings.ToLower(name)] = id
	}
}

func (id ID) Special() bool {
	_, ok := specialNames[id]
	return ok
}

func (id ID) String() string {
	if name, ok := specialNames[id]; ok {
		return name
	}
	return strconv.Itoa(int(id))
}

// ParseID accepts either a channel number or the name of a special channel.
func ParseID(value string) (ID, error) {
	value = strings.TrimSpace(value)
	if id, ok := specialIDs[strings.ToLower(value)]; ok {
		return id, nil
	}

	number, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("colors: unknown channel %q", value)
	}
	return ID(number), nil
}
