package dialogue

import (
	"fmt"
	"strings"
)

// Detectors are the deliberately simple boolean intent checks the state
// machine relies on: plain substring containment over the raw lowercased
// message, no fuzzy matching. They are stricter than the scored intent
// classifier and must stay a separate primitive.
type Detectors struct {
	Agreement    []string
	Disagreement []string
	End          []string
	Restart      []string
}

func DefaultDetectors() Detectors {
	return Detectors{
		Agreement: []string{
			"có", "co", "ok", "okay", "muốn", "muon", "thích", "thich",
			"được", "duoc", "yes", "y", "tiếp tục", "tiep tuc",
		},
		Disagreement: []string{
			"không", "khong", "no", "không muốn", "khong muon", "không thích", "khong thich",
		},
		End: []string{
			"tạm biệt", "tam biet", "bye", "goodbye", "kết thúc", "ket thuc", "thôi", "thoi",
		},
		Restart: []string{
			"bắt đầu lại", "restart", "bắt đầu", "mới", "lại từ đầu",
		},
	}
}

func (d Detectors) Validate() error {
	for name, list := range map[string][]string{
		"agreement":    d.Agreement,
		"disagreement": d.Disagreement,
		"end":          d.End,
		"restart":      d.Restart,
	} {
		if len(list) == 0 {
			return fmt.Errorf("dialogue: empty %s phrase list", name)
		}
	}
	return nil
}

func (d Detectors) IsAgreement(message string) bool    { return containsAny(message, d.Agreement) }
func (d Detectors) IsDisagreement(message string) bool { return containsAny(message, d.Disagreement) }
func (d Detectors) IsEndIntent(message string) bool    { return containsAny(message, d.End) }
func (d Detectors) IsRestartIntent(message string) bool { return containsAny(message, d.Restart) }

func containsAny(message string, phrases []string) bool {
	message = strings.ToLower(message)
	for _, p := range phrases {
		if strings.Contains(message, p) {
			return true
		}
	}
	return false
}
