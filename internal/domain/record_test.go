package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func scenarioSet() *RecordSet {
	return NewRecordSet([]Record{
		{StateCode: "CA", Year: 2010, UninsuredRate: 0.15},
		{StateCode: "CA", Year: 2011, UninsuredRate: 0.12},
		{StateCode: "NY", Year: 2010, UninsuredRate: 0.10},
	})
}

func TestRecordSet_FilterYear(t *testing.T) {
	set := scenarioSet()

	got := set.FilterYear(2010)
	assert.Equal(t, []Record{
		{StateCode: "CA", Year: 2010, UninsuredRate: 0.15},
		{StateCode: "NY", Year: 2010, UninsuredRate: 0.10},
	}, got)

	assert.Empty(t, set.FilterYear(1999))
	assert.NotNil(t, set.FilterYear(1999))
}

func TestRecordSet_FilterDoesNotAliasSource(t *testing.T) {
	set := scenarioSet()

	got := set.FilterYear(2010)
	got[0].UninsuredRate = 0.99

	assert.Equal(t, 0.15, set.At(0).UninsuredRate)
}

func TestNewRecordSet_CopiesInput(t *testing.T) {
	in := []Record{{StateCode: "CA", Year: 2010, UninsuredRate: 0.15}}
	set := NewRecordSet(in)
	in[0].StateCode = "ZZ"

	assert.Equal(t, "CA", set.At(0).StateCode)

	all := set.All()
	all[0].StateCode = "YY"
	assert.Equal(t, "CA", set.At(0).StateCode)
}

func TestRecordSet_Empty(t *testing.T) {
	var nilSet *RecordSet
	assert.Equal(t, 0, nilSet.Len())
	assert.Empty(t, nilSet.FilterYear(2010))
	assert.Empty(t, nilSet.Years())

	empty := NewRecordSet(nil)
	assert.Equal(t, 0, empty.Len())
	assert.Empty(t, empty.FilterYear(2010))
}

func TestRecordSet_Years(t *testing.T) {
	set := NewRecordSet([]Record{
		{StateCode: "CA", Year: 2012},
		{StateCode: "NY", Year: 2008},
		{StateCode: "TX", Year: 2012},
	})
	assert.Equal(t, []int{2008, 2012}, set.Years())
}

func TestRecord_DisplayName(t *testing.T) {
	assert.Equal(t, "California", Record{StateCode: "CA", State: "California"}.DisplayName())
	assert.Equal(t, "CA", Record{StateCode: "CA"}.DisplayName())
}
