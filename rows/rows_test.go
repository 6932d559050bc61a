package rows

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/former"
)

func TestLabelRowFormer(t *testing.T) {
	test.NewApp()
	lr := NewLabelRowFormer("Version", nil)
	lr.SubText = "1.0"
	lr.ConfigureCell()

	cell, ok := lr.Cell().(*LabelCell)
	require.True(t, ok)
	assert.Equal(t, "Version", cell.Title())
	assert.Equal(t, "1.0", cell.SubText())
	assert.Equal(t, widget.MediumImportance, cell.title.Importance)

	lr.Text = "Build"
	lr.Enabled = false
	lr.Update()
	assert.Equal(t, "Build", cell.Title())
	assert.Equal(t, widget.LowImportance, cell.title.Importance)
	assert.Equal(t, former.SelectionStyleNone, cell.SelectionStyle())
}

func TestNibLabelRowFormer(t *testing.T) {
	test.NewApp()
	lr := NewNibLabelRowFormer("From nib", nil)
	lr.ConfigureCell()

	cell, ok := lr.Cell().(*LabelCell)
	require.True(t, ok)
	assert.Equal(t, "From nib", cell.Title())
	assert.True(t, cell.title.TextStyle.Bold)
	assert.True(t, cell.subText.TextStyle.Italic)
}

func TestTextFieldRowFormer(t *testing.T) {
	test.NewApp()
	var changes []string
	tr := NewTextFieldRowFormer("Name", "Your name", func(s string) { changes = append(changes, s) })
	tr.Text = "Ryo"
	f := former.New(former.NewSectionFormer(tr.RowFormer))
	tr.ConfigureCell()

	cell := tr.Cell().(*TextFieldCell)
	assert.Equal(t, "Ryo", cell.Text())
	assert.Equal(t, "Your name", cell.entry.PlaceHolder)
	assert.True(t, tr.CanBecomeEditing())
	assert.Empty(t, changes, "configuring does not report changes")

	cell.TypeText("Aoyama")
	assert.Equal(t, "Aoyama", tr.Text)
	assert.Equal(t, []string{"Aoyama"}, changes)

	cell.entry.FocusGained()
	assert.True(t, tr.IsEditing())
	assert.Same(t, tr.RowFormer, f.EditingRowFormer())

	cell.entry.OnSubmitted(cell.Text())
	assert.False(t, tr.IsEditing())

	tr.Enabled = false
	tr.Update()
	assert.True(t, cell.entry.Disabled())
}

func TestSwitchRowFormer(t *testing.T) {
	test.NewApp()
	var got []bool
	sr := NewSwitchRowFormer("Notifications", false, func(on bool) { got = append(got, on) })
	sr.ConfigureCell()
	cell := sr.Cell().(*SwitchCell)
	assert.False(t, cell.Checked())

	cell.Tap()
	assert.True(t, sr.On)
	assert.Equal(t, []bool{true}, got)

	sr.CellSelected(former.IndexPath{})
	assert.True(t, sr.On, "selection toggles only with SwitchWhenSelected")

	sr.SwitchWhenSelected = true
	sr.CellSelected(former.IndexPath{})
	assert.False(t, sr.On)
	assert.False(t, cell.Checked())
	assert.Equal(t, []bool{true, false}, got)
}

func TestInlineSelectRowFormer(t *testing.T) {
	test.NewApp()
	var changed []string
	sr := NewInlineSelectRowFormer("Language", []string{"en", "ru", "pt"}, 0, func(_ int, v string) {
		changed = append(changed, v)
	})
	other := NewLabelRowFormer("Other", nil)
	section := former.NewSectionFormer(sr.RowFormer, other.RowFormer)
	f := former.New(section)
	sr.ConfigureCell()
	cell := sr.Cell().(*InlineSelectCell)

	require.NotNil(t, sr.AccessoryType)
	assert.Equal(t, former.AccessoryDisclosureIndicator, *sr.AccessoryType)
	assert.Equal(t, "en", cell.Value())
	assert.False(t, cell.Highlighted())
	assert.Equal(t, 3*pickerOptionHeight, sr.Picker().CellHeight)

	require.NoError(t, f.SelectRow(former.IndexPath{Row: 0}))
	assert.Equal(t, []*former.RowFormer{sr.RowFormer, sr.Picker().RowFormer, other.RowFormer}, section.All())
	assert.True(t, cell.Highlighted())
	assert.True(t, sr.IsEditing())

	sr.Picker().ConfigureCell()
	picker := sr.Picker().Cell().(*PickerCell)
	assert.Equal(t, "en", picker.Selected())

	picker.Choose("pt")
	assert.Equal(t, 2, sr.Selected)
	assert.Equal(t, "pt", cell.Value())
	assert.Equal(t, []string{"pt"}, changed)

	require.NoError(t, f.SelectRow(former.IndexPath{Row: 0}))
	assert.Equal(t, []*former.RowFormer{sr.RowFormer, other.RowFormer}, section.All())
	assert.False(t, cell.Highlighted())
	assert.False(t, sr.IsEditing())
}

func TestInlineSelectRowFormer_InvalidSelection(t *testing.T) {
	test.NewApp()
	sr := NewInlineSelectRowFormer("Empty", []string{"a"}, 4, nil)
	assert.Equal(t, -1, sr.Selected)
	assert.Equal(t, "", sr.Value())

	sr.Select(7)
	assert.Equal(t, -1, sr.Selected)
	sr.Select(0)
	assert.Equal(t, "a", sr.Value())
	assert.Equal(t, former.DefaultCellHeight, sr.Picker().CellHeight)
}

func TestTitleViewFormer(t *testing.T) {
	test.NewApp()
	for _, tv := range []*TitleViewFormer{NewTitleViewFormer("Profile"), NewNibTitleViewFormer("Profile")} {
		assert.Equal(t, titleViewHeight, tv.ViewHeight)
		tv.ConfigureView()
		view, ok := tv.View().(*TitleView)
		require.True(t, ok)
		assert.Equal(t, "Profile", view.Text())

		tv.Text = "Account"
		tv.Update()
		assert.Equal(t, "Account", view.Text())
	}
}

func TestBundleTemplates(t *testing.T) {
	test.NewApp()
	objects, err := Bundle.LoadNibNamed(NibLabelCell)
	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.IsType(t, &LabelCell{}, objects[0])

	assert.Subset(t, former.TemplateKinds(), []string{KindLabelCell, KindTitleView, KindSpacer})
}

func TestInlineSelectRowFormer_PickerFollowsOptions(t *testing.T) {
	test.NewApp()
	sr := NewInlineSelectRowFormer("Size", []string{"s", "m"}, 0, nil)
	f := former.New(former.NewSectionFormer(sr.RowFormer))
	sr.ConfigureCell()

	sr.Options = []string{"xs", "s", "m", "l", "xl"}
	if err := f.SelectRow(former.IndexPath{Row: 0}); err != nil {
		t.Fatalf("SelectRow: %v", err)
	}
	if got, want := sr.Picker().CellHeight, 5*pickerOptionHeight; got != want {
		t.Errorf("expanded picker height = %v, want %v", got, want)
	}

	sr.Picker().ConfigureCell()
	sr.Options = sr.Options[:3]
	sr.Picker().Update()
	if got, want := sr.Picker().CellHeight, 3*pickerOptionHeight; got != want {
		t.Errorf("updated picker height = %v, want %v", got, want)
	}
}
