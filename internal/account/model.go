package account

import (
	"bytes"
	"encoding/json"
)

// Field is a JSON scalar kept in its textual form. The upstream API sends
// levels and likes either as strings or as numbers.
type Field struct {
	Text  string
	Valid bool // false when the key is absent or null
}

func (f *Field) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = Field{}
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = Field{Text: s, Valid: true}
		return nil
	}
	*f = Field{Text: string(b), Valid: true}
	return nil
}

// Or returns the field text, or def when the field was absent or null.
func (f Field) Or(def string) string {
	if !f.Valid {
		return def
	}
	return f.Text
}

type guildInfo struct {
	GuildName Field `json:"GuildName"`
}

// infoResponse mirrors the parts of info.php we read.
type infoResponse struct {
	AccountName     Field      `json:"AccountName"`
	AccountLevel    Field      `json:"AccountLevel"`
	AccountLikes    Field      `json:"AccountLikes"`
	AccountAvatarID Field      `json:"AccountAvatarId"`
	Guild           *guildInfo `json:"Guild Information"`
}

// Record is the normalised account data used to draw a sticker.
// Likes and GuildName are empty when absent.
type Record struct {
	Name      string
	Level     string
	Likes     string
	AvatarID  string
	GuildName string
}

const (
	defaultLevel  = "Lv.N"
	guildNotFound = "Not Found"
)

func (r *infoResponse) record(defaultAvatarID string) (*Record, bool) {
	if r.AccountName.Text == "" {
		return nil, false
	}
	rec := &Record{
		Name:     r.AccountName.Text,
		Level:    r.AccountLevel.Or(defaultLevel),
		Likes:    r.AccountLikes.Or(""),
		AvatarID: r.AccountAvatarID.Or(defaultAvatarID),
	}
	if r.Guild != nil && r.Guild.GuildName.Text != guildNotFound {
		rec.GuildName = r.Guild.GuildName.Text
	}
	return rec, true
}
