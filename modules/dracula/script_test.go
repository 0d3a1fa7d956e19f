package dracula

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/soldracula/dracula/pkg/storyclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScript(t *testing.T) {
	script := Script()
	require.Len(t, script, ScriptLength)

	for i, item := range script {
		assert.Equal(t, storyclient.ItemTypeItem, item.Type, "item %d", i)
		assert.Equal(t, helpText, item.Display.HelpText, "item %d", i)
		assert.NotNil(t, item.Data, "item %d", i)
	}

	// speakers alternate, starting with Richter
	labels := make([]string, len(script))
	for i, item := range script {
		labels[i] = item.Display.Label
	}
	want := []string{"Richter:", "Dracula:", "Richter:", "Dracula:", "Richter:", "Dracula:"}
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Errorf("script speakers mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "What is a man? A miserable little pile of secrets. But enough talk… Have at you!", script[5].Display.Description)
}

func TestScriptIsCopied(t *testing.T) {
	a := Script()
	a[0].Display.Label = "Alucard:"
	a[0].Data["tampered"] = true

	b := Script()
	assert.Equal(t, "Richter:", b[0].Display.Label)
	assert.Empty(t, b[0].Data)
}
