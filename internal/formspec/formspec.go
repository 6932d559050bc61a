package formspec

import (
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/ytget/former"
	"github.com/ytget/former/rows"
)

// Row kinds understood in form files.
const (
	KindLabel     = "label"
	KindTextField = "textfield"
	KindSwitch    = "switch"
	KindSelect    = "select"
)

// File is a whole form.
type File struct {
	Title    string    `yaml:"title"`
	Sections []Section `yaml:"sections"`
}

// Section is one section of a form.
type Section struct {
	Header string `yaml:"header"`
	Footer string `yaml:"footer"`
	Rows   []Row  `yaml:"rows"`
}

// Row is one row of a section. Which fields apply depends on Kind.
type Row struct {
	Key         string   `yaml:"key"`
	Kind        string   `yaml:"kind"`
	Title       string   `yaml:"title"`
	Text        string   `yaml:"text"`
	SubText     string   `yaml:"sub_text"`
	Placeholder string   `yaml:"placeholder"`
	On          bool     `yaml:"on"`
	Options     []string `yaml:"options"`
	Selected    int      `yaml:"selected"`
	Height      float32  `yaml:"height"`
	Disabled    bool     `yaml:"disabled"`
	Accessory   string   `yaml:"accessory"`
	Nib         bool     `yaml:"nib"`
}

// Handler receives the events of built rows, identified by their Key.
type Handler interface {
	RowSelected(key string, indexPath former.IndexPath)
	ValueChanged(key string, value any)
}

// Load decodes a form from r.
func Load(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, errors.Wrap(err, "decode form")
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// LoadFile decodes the form stored at path.
func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open form")
	}
	defer fh.Close()

	f, err := Load(fh)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return f, nil
}

// Validate reports every invalid row at once.
func (f *File) Validate() error {
	var result *multierror.Error
	for si, s := range f.Sections {
		for ri, r := range s.Rows {
			if err := r.validate(); err != nil {
				result = multierror.Append(result, errors.Wrapf(err, "section %d row %d", si, ri))
			}
		}
	}
	return result.ErrorOrNil()
}

func (r Row) validate() error {
	switch r.Kind {
	case KindLabel, KindTextField, KindSwitch:
	case KindSelect:
		if len(r.Options) == 0 {
			return errors.New("select row without options")
		}
	default:
		return errors.Errorf("unknown kind %q", r.Kind)
	}
	if r.Height < 0 {
		return errors.Errorf("negative height %v", r.Height)
	}
	if r.Accessory != "" {
		if _, ok := former.ParseAccessoryType(r.Accessory); !ok {
			return errors.Errorf("unknown accessory %q", r.Accessory)
		}
	}
	return nil
}

// Build creates the sections of the form. h may be nil.
func (f *File) Build(h Handler) []*former.SectionFormer {
	sections := make([]*former.SectionFormer, 0, len(f.Sections))
	for _, s := range f.Sections {
		section := former.NewSectionFormer()
		if s.Header != "" {
			section.SetHeaderViewFormer(rows.NewTitleViewFormer(s.Header).ViewFormer)
		}
		if s.Footer != "" {
			section.SetFooterViewFormer(rows.NewTitleViewFormer(s.Footer).ViewFormer)
		}
		for _, r := range s.Rows {
			section.Add(r.build(h))
		}
		sections = append(sections, section)
	}
	return sections
}

func (r Row) build(h Handler) *former.RowFormer {
	changed := func(value any) {
		if h != nil {
			h.ValueChanged(r.Key, value)
		}
	}

	var rf *former.RowFormer
	switch r.Kind {
	case KindTextField:
		tr := rows.NewTextFieldRowFormer(r.Title, r.Placeholder, func(s string) { changed(s) })
		tr.Text = r.Text
		rf = tr.RowFormer
	case KindSwitch:
		sr := rows.NewSwitchRowFormer(r.Title, r.On, func(on bool) { changed(on) })
		sr.SwitchWhenSelected = true
		rf = sr.RowFormer
	case KindSelect:
		sr := rows.NewInlineSelectRowFormer(r.Title, r.Options, r.Selected, func(_ int, v string) { changed(v) })
		rf = sr.RowFormer
	default:
		var lr *rows.LabelRowFormer
		if r.Nib {
			lr = rows.NewNibLabelRowFormer(r.Title, nil)
		} else {
			lr = rows.NewLabelRowFormer(r.Title, nil)
		}
		lr.SubText = r.SubText
		rf = lr.RowFormer
	}

	if h != nil && rf.OnSelected == nil {
		rf.OnSelected = func(ip former.IndexPath, _ *former.RowFormer) {
			h.RowSelected(r.Key, ip)
		}
	}
	if r.Height > 0 {
		rf.CellHeight = r.Height
	}
	if r.Disabled {
		rf.Enabled = false
	}
	if a, ok := former.ParseAccessoryType(r.Accessory); ok && r.Accessory != "" {
		rf.SetAccessoryType(a)
	}
	return rf
}
