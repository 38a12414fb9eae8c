package enums

// ChatRole identifies the author of a conversation message.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// String implements fmt.Stringer.
func (r ChatRole) String() string {
	return string(r)
}

// IsValid reports whether the value is a known ChatRole.
func (r ChatRole) IsValid() bool {
	return r == ChatRoleUser || r == ChatRoleAssistant
}
