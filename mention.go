package discordstyle

import (
	"strconv"
)

// Mention is a rendered reference to a user, role or channel.
type Mention interface {
	Node
	ID() uint64
}

// parseID 接受非负整数或纯数字字符串（Discord API 中 snowflake 常以字符串传递）
func parseID(id any) (uint64, error) {
	switch v := id.(type) {
	case uint:
		return uint64(v), nil
	case uint8:
		return uint64(v), nil
	case uint16:
		return uint64(v), nil
	case uint32:
		return uint64(v), nil
	case uint64:
		return v, nil
	case int:
		return signedID(int64(v), id)
	case int8:
		return signedID(int64(v), id)
	case int16:
		return signedID(int64(v), id)
	case int32:
		return signedID(int64(v), id)
	case int64:
		return signedID(v, id)
	case string:
		if isDigits(v) {
			n, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				return 0, validationError(CodeInvalidID).With("id", id).Wrapf(err, "the ID does not fit in 64 bits")
			}
			return n, nil
		}
	}
	return 0, validationError(CodeInvalidID).With("id", id).Errorf("the ID must be an integer, got %T", id)
}

func signedID(v int64, id any) (uint64, error) {
	if v < 0 {
		return 0, validationError(CodeInvalidID).With("id", id).Errorf("the ID must not be negative")
	}
	return uint64(v), nil
}

// isDigits 检查字符串是否全为 ASCII 数字
func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

// UserMention renders <@id>, or <@!id> in nickname form.
//
// The nickname form changes nothing in current clients; it is kept for
// callers that need the exact legacy template.
type UserMention struct {
	id       uint64
	nickname bool
}

// NewUserMention creates a user mention. id is any non-negative Go integer
// or a string of decimal digits.
func NewUserMention(id any, nickname bool) (*UserMention, error) {
	n, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return &UserMention{id: n, nickname: nickname}, nil
}

// ID implements Mention.
func (m *UserMention) ID() uint64 { return m.id }

// Nickname reports whether the nickname form is used.
func (m *UserMention) Nickname() bool { return m.nickname }

// Render implements Node.
func (m *UserMention) Render() string {
	if m.nickname {
		return "<@!" + strconv.FormatUint(m.id, 10) + ">"
	}
	return "<@" + strconv.FormatUint(m.id, 10) + ">"
}

// String implements fmt.Stringer.
func (m *UserMention) String() string { return m.Render() }

// RoleMention renders <@&id>.
type RoleMention struct {
	id uint64
}

// NewRoleMention creates a role mention.
func NewRoleMention(id any) (*RoleMention, error) {
	n, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return &RoleMention{id: n}, nil
}

// ID implements Mention.
func (m *RoleMention) ID() uint64 { return m.id }

// Render implements Node.
func (m *RoleMention) Render() string {
	return "<@&" + strconv.FormatUint(m.id, 10) + ">"
}

// String implements fmt.Stringer.
func (m *RoleMention) String() string { return m.Render() }

// ChannelMention renders <#id>.
type ChannelMention struct {
	id uint64
}

// NewChannelMention creates a channel mention.
func NewChannelMention(id any) (*ChannelMention, error) {
	n, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return &ChannelMention{id: n}, nil
}

// ID implements Mention.
func (m *ChannelMention) ID() uint64 { return m.id }

// Render implements Node.
func (m *ChannelMention) Render() string {
	return "<#" + strconv.FormatUint(m.id, 10) + ">"
}

// String implements fmt.Stringer.
func (m *ChannelMention) String() string { return m.Render() }

var (
	_ Mention = (*UserMention)(nil)
	_ Mention = (*RoleMention)(nil)
	_ Mention = (*ChannelMention)(nil)
)
