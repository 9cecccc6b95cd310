package tabular_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/propkit/propkit/pkg/metadata"
	"github.com/propkit/propkit/pkg/tabular"
)

func personSchema(t *testing.T) *metadata.Schema {
	t.Helper()
	s, err := metadata.NewSchema(
		metadata.NewProperty("Name", metadata.KindString),
		metadata.NewProperty("Age", metadata.KindInt),
		metadata.NewProperty("Nickname", metadata.KindString, metadata.Nullable()),
	)
	require.NoError(t, err)
	return s
}

// sheetBytes builds an xlsx document in memory: first row is the header.
func sheetBytes(t *testing.T, sheet string, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if sheet != "Sheet1" {
		idx, err := f.NewSheet(sheet)
		require.NoError(t, err)
		f.SetActiveSheet(idx)
		require.NoError(t, f.DeleteSheet("Sheet1"))
	}
	for r, row := range rows {
		for c, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}
	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)
	return buf.Bytes()
}

func TestReadSheet(t *testing.T) {
	t.Parallel()
	schema := personSchema(t)
	mapping := tabular.NewMapping(schema)

	t.Run("imports typed rows", func(t *testing.T) {
		doc := sheetBytes(t, "Sheet1", [][]any{
			{"Name", "Age", "Nickname"},
			{"Alex", 33, "Al"},
			{"Bob", 20, nil},
		})
		containers, err := tabular.ReadSheet(bytes.NewReader(doc), "Sheet1", mapping)
		require.NoError(t, err)
		require.Len(t, containers, 2)

		name, _ := schema.Get("Name")
		age, _ := schema.Get("Age")
		nickname, _ := schema.Get("Nickname")

		pv, err := containers[0].Resolve(age, metadata.LocalOnly)
		require.NoError(t, err)
		assert.Equal(t, metadata.SourceDefined, pv.Source())
		i, err := pv.Value().AsInt()
		require.NoError(t, err)
		assert.Equal(t, int64(33), i)

		got, err := containers[1].Value(name).Value().AsString()
		require.NoError(t, err)
		assert.Equal(t, "Bob", got)

		// Empty cell: absent, not null.
		pv, err = containers[1].Resolve(nickname, metadata.LocalOnly)
		require.NoError(t, err)
		assert.False(t, pv.HasValue())
	})

	t.Run("null literal imports as explicit null", func(t *testing.T) {
		doc := sheetBytes(t, "Sheet1", [][]any{
			{"Name", "Age", "Nickname"},
			{"Alex", 33, "null"},
		})
		containers, err := tabular.ReadSheet(bytes.NewReader(doc), "Sheet1", mapping)
		require.NoError(t, err)
		require.Len(t, containers, 1)

		nickname, _ := schema.Get("Nickname")
		pv, err := containers[0].Resolve(nickname, metadata.LocalOnly)
		require.NoError(t, err)
		assert.True(t, pv.HasValue())
		assert.True(t, pv.Value().IsNull())
	})

	t.Run("unmapped headers are ignored", func(t *testing.T) {
		doc := sheetBytes(t, "Sheet1", [][]any{
			{"Name", "Unrelated"},
			{"Alex", "x"},
		})
		containers, err := tabular.ReadSheet(bytes.NewReader(doc), "Sheet1", mapping)
		require.NoError(t, err)
		require.Len(t, containers, 1)
		assert.Equal(t, 1, containers[0].Len())
	})

	t.Run("bad cell aborts with addressed error", func(t *testing.T) {
		doc := sheetBytes(t, "Sheet1", [][]any{
			{"Name", "Age"},
			{"Alex", "not-a-number"},
		})
		_, err := tabular.ReadSheet(bytes.NewReader(doc), "Sheet1", mapping)
		require.ErrorIs(t, err, tabular.ErrCellParse)
		assert.Contains(t, err.Error(), "B2")
	})

	t.Run("missing sheet fails", func(t *testing.T) {
		doc := sheetBytes(t, "Sheet1", [][]any{{"Name"}})
		_, err := tabular.ReadSheet(bytes.NewReader(doc), "People", mapping)
		assert.ErrorIs(t, err, tabular.ErrSheetNotFound)
	})

	t.Run("sheet without mapped headers fails", func(t *testing.T) {
		doc := sheetBytes(t, "Sheet1", [][]any{{"Foo", "Bar"}})
		_, err := tabular.ReadSheet(bytes.NewReader(doc), "Sheet1", mapping)
		assert.ErrorIs(t, err, tabular.ErrMissingHeader)
	})

	t.Run("garbage input fails to open", func(t *testing.T) {
		_, err := tabular.ReadSheet(bytes.NewReader([]byte("not an xlsx")), "Sheet1", mapping)
		assert.ErrorIs(t, err, tabular.ErrOpenDocument)
	})
}

func TestWriteSheet(t *testing.T) {
	t.Parallel()
	schema := personSchema(t)
	mapping := tabular.NewMapping(schema)
	name, _ := schema.Get("Name")
	age, _ := schema.Get("Age")
	nickname, _ := schema.Get("Nickname")

	t.Run("round-trip preserves values, nulls, and absence", func(t *testing.T) {
		containers := []*metadata.Container{
			metadata.NewContainer().
				MustWithValue(name, metadata.String("Alex")).
				MustWithValue(age, metadata.Int(33)).
				MustWithValue(nickname, metadata.Null(metadata.KindString)),
			metadata.NewContainer().
				MustWithValue(name, metadata.String("Bob")),
		}

		var buf bytes.Buffer
		require.NoError(t, tabular.WriteSheet(&buf, "People", mapping, containers))

		back, err := tabular.ReadSheet(bytes.NewReader(buf.Bytes()), "People", mapping)
		require.NoError(t, err)
		require.Len(t, back, 2)

		pv, err := back[0].Resolve(nickname, metadata.LocalOnly)
		require.NoError(t, err)
		assert.True(t, pv.Value().IsNull())

		i, err := back[0].Value(age).Value().AsInt()
		require.NoError(t, err)
		assert.Equal(t, int64(33), i)

		pv, err = back[1].Resolve(age, metadata.LocalOnly)
		require.NoError(t, err)
		assert.False(t, pv.HasValue())
	})

	t.Run("defaults stay out of the document with LocalOnly search", func(t *testing.T) {
		aged := metadata.NewProperty("Age", metadata.KindInt,
			metadata.WithDefault(func() metadata.Value { return metadata.Int(18) }))
		s, err := metadata.NewSchema(aged)
		require.NoError(t, err)
		m := tabular.NewMapping(s)

		var buf bytes.Buffer
		require.NoError(t, tabular.WriteSheet(&buf, "Sheet1", m, []*metadata.Container{
			metadata.NewContainer(),
		}))

		back, err := tabular.ReadSheet(bytes.NewReader(buf.Bytes()), "Sheet1", m)
		require.NoError(t, err)
		require.Len(t, back, 1)
		pv, err := back[0].Resolve(aged, metadata.LocalOnly)
		require.NoError(t, err)
		assert.False(t, pv.HasValue())
	})

	t.Run("header row follows mapping order", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, tabular.WriteSheet(&buf, "Sheet1", mapping, nil))

		f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
		require.NoError(t, err)
		defer f.Close()
		rows, err := f.GetRows("Sheet1")
		require.NoError(t, err)
		require.NotEmpty(t, rows)
		assert.Equal(t, []string{"Name", "Age", "Nickname"}, rows[0])
	})
}

func TestMappingWithColumn(t *testing.T) {
	t.Parallel()
	schema := personSchema(t)

	t.Run("replaces a column keeping order", func(t *testing.T) {
		age, _ := schema.Get("Age")
		m := tabular.NewMapping(schema).WithColumn(tabular.Column{
			Header:   "Age",
			Property: age,
			Parser: func(string) (metadata.Value, error) {
				return metadata.Int(99), nil
			},
		})
		cols := m.Columns()
		require.Len(t, cols, 3)
		assert.Equal(t, "Age", cols[1].Header)

		v, err := cols[1].Parser("anything")
		require.NoError(t, err)
		i, err := v.AsInt()
		require.NoError(t, err)
		assert.Equal(t, int64(99), i)
	})

	t.Run("appends an unknown header", func(t *testing.T) {
		extra := metadata.NewProperty("Extra", metadata.KindString)
		m := tabular.NewMapping(schema).WithColumn(tabular.Column{Header: "Extra", Property: extra})
		cols := m.Columns()
		require.Len(t, cols, 4)
		assert.Equal(t, "Extra", cols[3].Header)
		assert.NotNil(t, cols[3].Parser)
	})
}
