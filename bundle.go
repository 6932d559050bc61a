package former

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// NibExt is the file extension of nib templates inside an FSBundle.
const NibExt = ".yaml"

// Bundle resolves named nib templates into visual objects.
type Bundle interface {
	LoadNibNamed(name string) ([]fyne.CanvasObject, error)
}

// TemplateProps are the properties of one object in a nib template.
type TemplateProps map[string]any

// String returns the property as a string, or "" when absent.
func (p TemplateProps) String(key string) string {
	switch v := p[key].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// Bool returns the property as a bool, or false when absent.
func (p TemplateProps) Bool(key string) bool {
	switch v := p[key].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	}
	return false
}

// Float32 returns the property as a float32, or fallback when absent.
func (p TemplateProps) Float32(key string, fallback float32) float32 {
	switch v := p[key].(type) {
	case int:
		return float32(v)
	case float64:
		return float32(v)
	}
	return fallback
}

// TemplateFactory builds one object of a registered kind.
type TemplateFactory func(props TemplateProps) (fyne.CanvasObject, error)

var templateKinds = map[string]TemplateFactory{}

// RegisterTemplateKind makes kind available to nib templates. It panics if
// kind is registered twice or factory is nil.
func RegisterTemplateKind(kind string, factory TemplateFactory) {
	if factory == nil {
		panic("former: RegisterTemplateKind factory is nil")
	}
	if _, dup := templateKinds[kind]; dup {
		panic("former: RegisterTemplateKind called twice for kind " + kind)
	}
	templateKinds[kind] = factory
}

// TemplateKinds returns the registered kinds, sorted.
func TemplateKinds() []string {
	kinds := make([]string, 0, len(templateKinds))
	for k := range templateKinds {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

type nibFile struct {
	Objects []nibObject `yaml:"objects"`
}

type nibObject struct {
	Kind  string        `yaml:"kind"`
	Props TemplateProps `yaml:",inline"`
}

// FSBundle reads nib templates from a file system. A nib named "cell" is the
// file "cell.yaml" under dir; it lists objects by kind:
//
//	objects:
//	  - kind: label_cell
//	    bold: true
type FSBundle struct {
	fsys fs.FS
	dir  string
}

// NewFSBundle creates a bundle reading templates under dir in fsys.
func NewFSBundle(fsys fs.FS, dir string) *FSBundle {
	if dir == "" {
		dir = "."
	}
	return &FSBundle{fsys: fsys, dir: dir}
}

// LoadNibNamed decodes the named template and builds every object in it.
func (b *FSBundle) LoadNibNamed(name string) ([]fyne.CanvasObject, error) {
	data, err := fs.ReadFile(b.fsys, path.Join(b.dir, name+NibExt))
	if err != nil {
		return nil, errors.Wrapf(err, "read nib %q", name)
	}

	var file nibFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrapf(err, "decode nib %q", name)
	}

	var result *multierror.Error
	objects := make([]fyne.CanvasObject, 0, len(file.Objects))
	for i, o := range file.Objects {
		factory, ok := templateKinds[o.Kind]
		if !ok {
			result = multierror.Append(result, errors.Errorf("object %d: unknown kind %q", i, o.Kind))
			continue
		}
		obj, err := factory(o.Props)
		if err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "object %d (%s)", i, o.Kind))
			continue
		}
		objects = append(objects, obj)
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, errors.Wrapf(err, "load nib %q", name)
	}

	logger.Debug("nib loaded", "nib", name, "objects", len(objects))
	return objects, nil
}

var mainBundle Bundle

// MainBundle returns the bundle used by nib instantiation without an explicit
// bundle. Unless replaced it reads templates from the working directory.
func MainBundle() Bundle {
	if mainBundle == nil {
		mainBundle = NewFSBundle(os.DirFS("."), "")
	}
	return mainBundle
}

// SetMainBundle replaces the main bundle. Nil restores the default.
func SetMainBundle(b Bundle) {
	mainBundle = b
}
