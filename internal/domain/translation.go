package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrTranslationNotFound     = errors.New("translation not found")
	ErrEmptyTranslationContent = errors.New("Translation content cannot be empty")
)

// InvalidLanguageKeysError reports every language key used in a content map
// that has no matching language tag.
type InvalidLanguageKeysError struct {
	Keys []string
}

func (e *InvalidLanguageKeysError) Error() string {
	return fmt.Sprintf(
		"The following language keys do not exist in the language tags table: %s",
		strings.Join(e.Keys, ", "),
	)
}

// TranslationContent is the nested payload of a translation entry:
// field key -> language key -> localized string.
//
//	{
//	  "title": {
//	    "en": "this is title",
//	    "zh": "This is title"
//	  }
//	}
type TranslationContent map[string]map[string]string

// LanguageKeys returns the distinct language keys appearing anywhere in the
// content map, sorted so validation errors come out in a stable order.
func (c TranslationContent) LanguageKeys() []string {
	seen := make(map[string]struct{})
	for _, langs := range c {
		for key := range langs {
			seen[key] = struct{}{}
		}
	}

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Value marshals the content map for storage in a JSONB column.
func (c TranslationContent) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *TranslationContent) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	case nil:
		*c = nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TranslationContent", src)
	}
}

type Translation struct {
	ID            int64              `json:"id"`
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	BusinessTagID int64              `json:"business_tag_id"`
	Translations  TranslationContent `json:"translations"`
}

type CreateTranslationRequest struct {
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	BusinessTagID int64              `json:"business_tag_id"`
	Translations  TranslationContent `json:"translations"`
}
