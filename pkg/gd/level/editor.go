package level

import (
	"errors"
	"fmt"
	"strings"

	opt "github.com/repeale/fp-go/option"
	"github.com/rs/zerolog/log"
	"github.com/sasha-s/go-deadlock"

	"github.com/cfoust/gdlevel/pkg/gd/api"
	"github.com/cfoust/gdlevel/pkg/gd/schema"
	"github.com/cfoust/gdlevel/pkg/utils"
)

const (
	objectSeparator = ";"

	MaxGroup = 999
)

var ErrNoFreeGroup = errors.New("level: every group is in use")

type ObjectError struct {
	Index int
	Err   error
}

func (e *ObjectError) Error() string {
	return fmt.Sprintf("level: object %d: %v", e.Index, e.Err)
}

func (e *ObjectError) Unwrap() error {
	return e.Err
}

// Change is published whenever objects are added to an editor.
type Change struct {
	Added int
	Total int
}

// Editor holds a level's header and objects. Unlike individual records it
// is safe to use from several goroutines; objects go in and come out as
// copies so that callers never share a record with it.
type Editor struct {
	mutex   deadlock.RWMutex
	header  *Header
	objects []*api.Object
	changes *utils.Topic[Change]
}

func New() *Editor {
	return &Editor{
		header:  &Header{},
		changes: utils.NewTopic[Change](),
	}
}

// Parse reads a level string, decompressing it first if needed. The header
// section is optional.
func Parse(text string) (*Editor, error) {
	if IsCompressed(text) {
		decompressed, err := Decompress(text)
		if err != nil {
			return nil, err
		}
		text = decompressed
	}

	editor := New()
	sections := strings.Split(strings.TrimSpace(text), objectSeparator)
	if len(sections) > 0 && strings.HasPrefix(sections[0], "k") {
		header, err := ParseHeader(sections[0])
		if err != nil {
			return nil, err
		}
		editor.header = header
		sections = sections[1:]
	}

	for i, section := range sections {
		if section == "" {
			continue
		}

		object, err := api.ObjectFromString(section)
		if err != nil {
			return nil, &ObjectError{Index: i, Err: err}
		}
		editor.objects = append(editor.objects, object)
	}

	log.Debug().
		Int("objects", len(editor.objects)).
		Int("header", editor.header.Len()).
		Msg("parsed level")

	return editor, nil
}

func (e *Editor) Len() int {
	e.mutex.RLock()
	defer e.mutex.RUnlock()
	return len(e.objects)
}

func (e *Editor) Header() *Header {
	e.mutex.RLock()
	defer e.mutex.RUnlock()
	return e.header.Copy()
}

func (e *Editor) SetHeader(header *Header) {
	e.mutex.Lock()
	e.header = header.Copy()
	e.mutex.Unlock()
}

// Objects returns copies of every object in level order.
func (e *Editor) Objects() []*api.Object {
	return e.Filter(func(*api.Object) bool { return true })
}

func (e *Editor) Add(objects ...*api.Object) {
	e.mutex.Lock()
	for _, object := range objects {
		e.objects = append(e.objects, object.Copy())
	}
	total := len(e.objects)
	e.mutex.Unlock()

	e.changes.Publish(Change{Added: len(objects), Total: total})
}

// Filter returns copies of the objects for which keep is true.
func (e *Editor) Filter(keep func(*api.Object) bool) []*api.Object {
	e.mutex.RLock()
	defer e.mutex.RUnlock()

	var result []*api.Object
	for _, object := range e.objects {
		if keep(object) {
			result = append(result, object.Copy())
		}
	}
	return result
}

// WithGroups returns the objects that are in at least one of ids.
func (e *Editor) WithGroups(ids ...int) []*api.Object {
	return e.Filter(func(object *api.Object) bool {
		groups := api.Groups.Get(object)
		if opt.IsNone(groups) {
			return false
		}
		for _, id := range ids {
			if groups.Value.Has(id) {
				return true
			}
		}
		return false
	})
}

func (e *Editor) UsedGroups() schema.Groups {
	e.mutex.RLock()
	defer e.mutex.RUnlock()

	used := schema.NewGroups()
	for _, object := range e.objects {
		groups := api.Groups.Get(object)
		if opt.IsSome(groups) {
			used = used.Union(groups.Value...)
		}
	}
	return used
}

// FreeGroup returns the lowest group ID no object uses.
func (e *Editor) FreeGroup() (int, error) {
	used := e.UsedGroups()
	for id := 1; id <= MaxGroup; id++ {
		if !used.Has(id) {
			return id, nil
		}
	}
	return 0, ErrNoFreeGroup
}

func (e *Editor) Dump() (string, error) {
	e.mutex.RLock()
	defer e.mutex.RUnlock()

	var builder strings.Builder
	if e.header.Len() > 0 {
		builder.WriteString(e.header.String())
		builder.WriteString(objectSeparator)
	}

	for i, object := range e.objects {
		text, err := object.Dump()
		if err != nil {
			return "", &ObjectError{Index: i, Err: err}
		}
		builder.WriteString(text)
		builder.WriteString(objectSeparator)
	}
	return builder.String(), nil
}

// Changes subscribes to additions. Call Done on the subscriber when finished.
func (e *Editor) Changes() *utils.Subscriber[Change] {
	return e.changes.Subscribe()
}
