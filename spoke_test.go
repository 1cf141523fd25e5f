package hello_world

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTranslator(t *testing.T) *Translator {
	translator := NewTranslatorVar(StringMap{"product": "Hello World"})
	require.NoError(t, translator.SetLanguage("en"))
	return translator
}

func TestSpokeStatus(t *testing.T) {
	service := NewService("/mnt/sysroot")
	spoke := NewSpoke(LocalBackend{Service: service}, newTestTranslator(t))
	require.NoError(t, spoke.Refresh())
	assert.False(t, spoke.Completed())
	assert.Equal(t, "Text not set", spoke.Status())

	spoke.SetText("one\n")
	assert.True(t, spoke.Completed())
	assert.Equal(t, "Text set with 1 line", spoke.Status())

	spoke.SetText("one\ntwo\nthree")
	spoke.SetReverse(true)
	assert.Equal(t, "Text set with 3 lines to reverse", spoke.Status())
}

func TestSpokeApplyAndRefresh(t *testing.T) {
	service := NewService("/mnt/sysroot")
	service.SetLines([]string{"hello\n", "world"})
	spoke := NewSpoke(LocalBackend{Service: service}, newTestTranslator(t))
	require.NoError(t, spoke.Refresh())
	assert.Equal(t, "hello\nworld", spoke.Text())

	spoke.SetText("new\ntext\n")
	spoke.SetReverse(true)
	assert.Equal(t, []string{"hello\n", "world"}, service.Lines(), "nothing is stored before Apply")

	require.NoError(t, spoke.Apply())
	assert.Equal(t, []string{"new\n", "text\n"}, service.Lines())
	assert.True(t, service.Reverse())

	service.SetLines(nil)
	require.NoError(t, spoke.Refresh())
	assert.Equal(t, "", spoke.Text())
	assert.False(t, spoke.Completed())
}

type failingBackend struct{ LocalBackend }

var errBackend = errors.New("backend unavailable")

func (failingBackend) SetLines([]string) error  { return errBackend }
func (failingBackend) Lines() ([]string, error) { return nil, errBackend }

func TestSpokeBackendErrors(t *testing.T) {
	spoke := NewSpoke(failingBackend{}, newTestTranslator(t))
	assert.ErrorIs(t, spoke.Refresh(), errBackend)
	assert.ErrorIs(t, spoke.Apply(), errBackend)
}

func TestSpokeHub(t *testing.T) {
	spoke := NewSpoke(LocalBackend{Service: NewService("/")}, newTestTranslator(t))
	assert.Equal(t, "_HELLO WORLD", spoke.Title())
	assert.Equal(t, "HELLO WORLD", spoke.Category().Title(spoke.Translator()))
	assert.True(t, spoke.Ready())
	assert.False(t, spoke.Mandatory())
	assert.True(t, spoke.ShouldRun(AnacondaEnvironment))
	assert.True(t, spoke.ShouldRun(InitialSetupEnvironment))
	assert.False(t, spoke.ShouldRun("other"))
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		text  string
		lines []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a\n", []string{"a\n"}},
		{"a\nb", []string{"a\n", "b"}},
		{"a\n\nb\n", []string{"a\n", "\n", "b\n"}},
	}
	for _, test := range tests {
		assert.Equal(t, test.lines, SplitLines(test.text), "%q", test.text)
	}
}
