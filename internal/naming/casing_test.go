package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstName(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"PADDING", "Padding"},
		{"CREATE_FAST", "CreateFast"},
		{"Create_Fast", "CreateFast"},
		{"create_fast", "CreateFast"},
		{"CREATE2", "Create2"},
		{"AUTH_CHALLENGE", "AuthChallenge"},
		{"relay-early", "RelayEarly"},
		{"ipv4 addr", "Ipv4Addr"},
		{"IPV4ADDR", "Ipv4addr"},
		{"ED25519_IDENTITY", "Ed25519Identity"},
		{"DÉBUT_FIN", "DébutFin"},
		{"ÉTAT", "État"},
		{"FIN_ÉTAT", "Fin_état"},
		{"A/B", "A/b"},
		{"_PADDING", "Padding"},
		{"CREATE__FAST", "Create_Fast"},
		{"LEVEL_2", "Level_2"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, ConstName(tt.label))
		})
	}
}

func TestConstName_Idempotent(t *testing.T) {
	for _, label := range []string{"VPADDING", "CREATED_FAST", "NETINFO", "Mixed_Case_Label"} {
		first := ConstName(label)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, ConstName(label))
		}
	}
}

func TestReceiver(t *testing.T) {
	assert.Equal(t, "c", Receiver("Command"))
	assert.Equal(t, "l", Receiver("LinkSpecType"))
	assert.Equal(t, "é", Receiver("Élan"))
	assert.Equal(t, "", Receiver(""))
}

func TestStringMapVar(t *testing.T) {
	assert.Equal(t, "stringsCommand", StringMapVar("Command"))
}

func TestIsIdentifier(t *testing.T) {
	assert.True(t, IsIdentifier("cell"))
	assert.True(t, IsIdentifier("_x1"))
	assert.False(t, IsIdentifier(""))
	assert.False(t, IsIdentifier("2fast"))
	assert.False(t, IsIdentifier("func"))
	assert.False(t, IsIdentifier("a.b"))
}

func TestIsExported(t *testing.T) {
	assert.True(t, IsExported("Command"))
	assert.False(t, IsExported("command"))
	assert.False(t, IsExported("_Command"))
	assert.False(t, IsExported(""))
}
