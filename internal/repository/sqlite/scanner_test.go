package sqlite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testScanner implements Scanner and Rows over canned values
type testScanner struct {
	rows [][]interface{}
	pos  int
	err  error
}

func (ts *testScanner) Next() bool {
	if ts.pos >= len(ts.rows) {
		return false
	}
	ts.pos++
	return true
}

func (ts *testScanner) Err() error { return nil }

func (ts *testScanner) Scan(dest ...interface{}) error {
	if ts.err != nil {
		return ts.err
	}
	data := ts.rows[ts.pos-1]
	if len(dest) != len(data) {
		return errors.New("mismatch in number of destinations")
	}
	for i, d := range dest {
		switch v := d.(type) {
		case *int64:
			*v = data[i].(int64)
		case *string:
			*v = data[i].(string)
		}
	}
	return nil
}

func TestScanTask(t *testing.T) {
	scanner := &testScanner{rows: [][]interface{}{{int64(3), "id-3", "Buy milk", "2 litres", int64(1)}}, pos: 1}

	row, err := ScanTask(scanner)
	require.NoError(t, err)
	assert.Equal(t, &TaskRow{Seq: 3, ID: "id-3", Name: "Buy milk", Description: "2 litres", Completed: true}, row)
}

func TestScanTask_Error(t *testing.T) {
	scanner := &testScanner{err: errors.New("scan failed")}

	row, err := ScanTask(scanner)
	assert.Error(t, err)
	assert.Nil(t, row)
}

func TestScanTasks(t *testing.T) {
	scanner := &testScanner{rows: [][]interface{}{
		{int64(1), "a", "A", "", int64(0)},
		{int64(2), "b", "B", "desc", int64(1)},
	}}

	rows, err := ScanTasks(scanner)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "A", rows[0].Name)
	assert.False(t, rows[0].Completed)
	assert.Equal(t, "B", rows[1].Name)
	assert.True(t, rows[1].Completed)
}

func TestScanTasks_Empty(t *testing.T) {
	rows, err := ScanTasks(&testScanner{})
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
