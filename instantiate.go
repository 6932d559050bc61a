package former

import "fmt"

// InstantiateType selects how a cell or view is created: programmatically
// through its constructor, or from the first object of a nib template.
type InstantiateType struct {
	// NibName names a template resource. Empty means class instantiation.
	NibName string
	// Bundle scopes NibName. Nil means MainBundle.
	Bundle Bundle
}

// InstantiateClass creates objects by calling their constructor.
var InstantiateClass = InstantiateType{}

// InstantiateNib loads objects from the named template in bundle.
func InstantiateNib(nibName string, bundle Bundle) InstantiateType {
	return InstantiateType{NibName: nibName, Bundle: bundle}
}

// IsNib reports whether objects come from a template.
func (t InstantiateType) IsNib() bool {
	return t.NibName != ""
}

func (t InstantiateType) String() string {
	if !t.IsNib() {
		return "class"
	}
	return fmt.Sprintf("nib(%s)", t.NibName)
}

// instantiate creates an object according to t. A nib that does not yield a
// compatible first object is a packaging error and panics.
func instantiate[T any](newObject func() T, t InstantiateType, what string) T {
	if !t.IsNib() {
		return newObject()
	}

	bundle := t.Bundle
	if bundle == nil {
		bundle = MainBundle()
	}
	objects, err := bundle.LoadNibNamed(t.NibName)
	if err == nil && len(objects) > 0 {
		if obj, ok := objects[0].(T); ok {
			return obj
		}
		err = fmt.Errorf("first object is %T", objects[0])
	} else if err == nil {
		err = fmt.Errorf("nib is empty")
	}

	logger.Error("failed to load "+what+" from nib", "nib", t.NibName, "err", err)
	panic(fmt.Sprintf("former: failed to load %s %s from nib: %v", what, t.NibName, err))
}
