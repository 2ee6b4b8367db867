package output

import (
	"encoding/json"
	"fmt"

	aw "github.com/deanishe/awgo"

	"github.com/gorewood/daydayup/internal/query"
)

// hiddenIcon is a non-empty path Alfred cannot resolve, which suppresses the
// default workflow icon.
var hiddenIcon = &aw.Icon{Value: " "}

// AlfredFeedback converts items to Alfred script filter feedback.
func AlfredFeedback(items []query.Item) *aw.Feedback {
	fb := aw.NewFeedback()
	for _, item := range items {
		text := item.Text()
		fb.NewItem(item.Title).
			Subtitle(item.Subtitle).
			Arg(text).
			Copytext(text).
			Largetype(text).
			Icon(hiddenIcon).
			Valid(true)
	}
	return fb
}

func (p *Printer) writeAlfred(items []query.Item) error {
	data, err := json.Marshal(AlfredFeedback(items))
	if err != nil {
		return fmt.Errorf("encoding Alfred feedback: %w", err)
	}
	mustWrite(p.w.Write(data))
	mustWrite(fmt.Fprintln(p.w))
	return nil
}
