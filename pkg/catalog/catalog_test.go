package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapLanguageCodes(t *testing.T) {
	tests := []struct {
		name  string
		codes string
		want  []string
	}{
		{
			name:  "known codes",
			codes: "6,20,24",
			want:  []string{"Hindi", "Tamil", "English"},
		},
		{
			name:  "whitespace around codes",
			codes: " 7 , 11 ",
			want:  []string{"Kannada", "Malayalam"},
		},
		{
			name:  "unknown code passes through verbatim",
			codes: "6,99",
			want:  []string{"Hindi", "99"},
		},
		{
			name:  "empty input",
			codes: "",
			want:  []string{},
		},
		{
			name:  "single code",
			codes: "21",
			want:  []string{"Telugu"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapLanguageCodes(tt.codes))
		})
	}
}

const sampleCSV = `Course No,Course Title,Course Description,Who This Course is For,Released Languages
101,Honey Bee Farming,Learn beekeeping from scratch,Aspiring farmers,"6,20,24"
102,Poultry Farm Basics,Start and run a poultry farm,Rural entrepreneurs,24
103,Mushroom Cultivation,Grow mushrooms at home,Anyone,
`

func TestLoad(t *testing.T) {
	records, err := Load(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, records, 3)

	first := records[0]
	assert.Equal(t, 101, first.CourseNo)
	assert.Equal(t, "Honey Bee Farming", first.Title)
	assert.Equal(t, "6,20,24", first.LanguageCodes)
	assert.Equal(t, []string{"Hindi", "Tamil", "English"}, first.Languages)

	assert.Equal(t, []string{"English"}, records[1].Languages)
	assert.Empty(t, records[2].Languages)
}

func TestLoadMissingColumn(t *testing.T) {
	_, err := Load(strings.NewReader("Course No,Course Title\n1,Test\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing column")
}

func TestLoadInvalidCourseNo(t *testing.T) {
	bad := "Course No,Course Title,Course Description,Who This Course is For,Released Languages\nabc,T,D,A,24\n"
	_, err := Load(strings.NewReader(bad))
	require.Error(t, err)
}

func TestBuildUnit(t *testing.T) {
	records, err := Load(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	unit := BuildUnit(records[0])
	assert.Contains(t, unit.Text, "Course Title: Honey Bee Farming")
	assert.Contains(t, unit.Text, "Course Description: Learn beekeeping from scratch")
	assert.Contains(t, unit.Text, "Available Languages: Hindi, Tamil, English")
	assert.Contains(t, unit.Text, "Target Audience: Aspiring farmers")
	assert.Contains(t, unit.Text, "Course Number: 101")
	assert.Equal(t, 101, unit.Metadata.CourseNo)
	assert.Equal(t, "6,20,24", unit.Metadata.LanguageCodes)

	// Records without release codes render a placeholder, not an empty field.
	empty := BuildUnit(records[2])
	assert.Contains(t, empty.Text, "Available Languages: Not specified")
}

func TestBuildUnitsPreservesOrder(t *testing.T) {
	records, err := Load(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	units := BuildUnits(records)
	require.Len(t, units, 3)
	assert.Equal(t, 101, units[0].Metadata.CourseNo)
	assert.Equal(t, 102, units[1].Metadata.CourseNo)
	assert.Equal(t, 103, units[2].Metadata.CourseNo)
}
