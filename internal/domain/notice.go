package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEmptyNotice is returned for a notice that names no file.
var ErrEmptyNotice = errors.New("file notice has no path")

// ParseFileNotice reads a notice from a source message. The value is either
// a JSON object {"path": "...", "swap": true} or a bare file path. When the
// notice does not say whether to swap, a "swap" header is consulted and then
// defaultSwap.
func ParseFileNotice(raw RawEvent, defaultSwap bool) (FileNotice, error) {
	value := bytes.TrimSpace(raw.Value)
	notice := FileNotice{Swap: defaultSwap}

	if h, ok := raw.Headers["swap"]; ok {
		v, err := strconv.ParseBool(h)
		if err != nil {
			return FileNotice{}, fmt.Errorf("parse swap header %q: %w", h, err)
		}
		notice.Swap = v
	}

	if len(value) > 0 && value[0] == '{' {
		var rec struct {
			Path string `json:"path"`
			Swap *bool  `json:"swap"`
		}
		if err := json.Unmarshal(value, &rec); err != nil {
			return FileNotice{}, fmt.Errorf("parse file notice: %w", err)
		}
		notice.Path = strings.TrimSpace(rec.Path)
		if rec.Swap != nil {
			notice.Swap = *rec.Swap
		}
	} else {
		notice.Path = string(value)
	}

	if notice.Path == "" {
		return FileNotice{}, ErrEmptyNotice
	}
	return notice, nil
}
