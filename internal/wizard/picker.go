package wizard

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/Veraticus/acefi/internal/common"
	"github.com/Veraticus/acefi/internal/model"
	"github.com/agnivade/levenshtein"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Picker error messages shown to the user.
const (
	ErrTextBanksFailed = "Failed to load banks. Please check your connection and try again."
	ErrTextNoBanks     = "No banks found. Please check your connection and try again."
)

// PickerState is what the bank picker is currently showing.
type PickerState int

const (
	PickerClosed PickerState = iota
	PickerLoading
	PickerError // fetch failed; recover with Retry
	PickerEmpty // search matched nothing; recover with ClearSearch
	PickerReady
)

func (s PickerState) String() string {
	switch s {
	case PickerClosed:
		return "closed"
	case PickerLoading:
		return "loading"
	case PickerError:
		return "error"
	case PickerEmpty:
		return "empty"
	case PickerReady:
		return "ready"
	default:
		return "unknown"
	}
}

// BankPicker is a searchable, sorted list of banks fetched each time the
// picker opens.
type BankPicker struct {
	logger   *slog.Logger
	pending  *Request
	banks    []model.Bank
	filtered []model.Bank
	query    string
	err      string
	visible  bool
}

// NewBankPicker creates a closed picker.
func NewBankPicker(logger *slog.Logger) *BankPicker {
	return &BankPicker{logger: common.ComponentLogger(logger, "bank_picker")}
}

// Open shows the picker and starts the fetch. It returns nil when the picker
// is already open.
func (p *BankPicker) Open(ctx context.Context) *Request {
	if p.visible {
		return nil
	}
	p.visible = true
	return p.startFetch(ctx)
}

// Retry re-runs the fetch once, without backoff.
func (p *BankPicker) Retry(ctx context.Context) *Request {
	if !p.visible {
		return nil
	}
	p.logger.Debug("Retrying bank list fetch")
	return p.startFetch(ctx)
}

func (p *BankPicker) startFetch(ctx context.Context) *Request {
	if p.pending != nil {
		p.pending.Cancel()
	}
	p.err = ""
	p.pending = NewRequest(ctx)
	return p.pending
}

// CompleteFetch applies the outcome of req. Results for any request other
// than the pending one are dropped; it reports whether the result was used.
func (p *BankPicker) CompleteFetch(req *Request, banks []model.Bank, err error) bool {
	if req == nil || req != p.pending || req.Cancelled() {
		if req != nil && common.IsCancelled(req.Err()) {
			p.logger.Debug("Dropped bank list for cancelled request", "error", err)
		}
		return false
	}
	p.pending = nil
	req.Cancel()

	switch {
	case err != nil:
		p.logger.Error("Failed to load banks", "error", err)
		p.err = ErrTextBanksFailed
	case len(banks) == 0:
		p.logger.Warn("Received empty bank list")
		p.err = ErrTextNoBanks
	default:
		p.banks = SortBanks(banks)
		p.logger.Debug("Loaded banks", "count", len(p.banks))
	}
	p.refilter()
	return true
}

// SetQuery updates the search text and recomputes the filtered view.
func (p *BankPicker) SetQuery(q string) {
	p.query = q
	p.refilter()
}

// ClearSearch empties the search text.
func (p *BankPicker) ClearSearch() {
	p.SetQuery("")
}

// Query returns the current search text.
func (p *BankPicker) Query() string {
	return p.query
}

func (p *BankPicker) refilter() {
	p.filtered = FilterBanks(p.banks, p.query)
}

// Filtered returns the banks matching the current search, sorted by name.
func (p *BankPicker) Filtered() []model.Bank {
	return slices.Clone(p.filtered)
}

// State reports what the picker should display.
func (p *BankPicker) State() PickerState {
	switch {
	case !p.visible:
		return PickerClosed
	case p.pending != nil:
		return PickerLoading
	case p.err != "":
		return PickerError
	case len(p.filtered) == 0:
		return PickerEmpty
	default:
		return PickerReady
	}
}

// Error returns the fetch error text, if any.
func (p *BankPicker) Error() string {
	return p.err
}

// Visible reports whether the picker is open.
func (p *BankPicker) Visible() bool {
	return p.visible
}

// Select returns the bank with code from the filtered view and closes the
// picker in the same step. Nothing happens when code is not listed.
func (p *BankPicker) Select(code string) (model.Bank, bool) {
	if p.State() != PickerReady {
		return model.Bank{}, false
	}
	for _, b := range p.filtered {
		if b.Code == code {
			p.logger.Debug("Selected bank", "name", b.Name, "code", b.Code)
			p.Close()
			return b, true
		}
	}
	return model.Bank{}, false
}

// Close hides the picker and cancels any fetch in flight.
func (p *BankPicker) Close() {
	if p.pending != nil {
		p.pending.Cancel()
		p.pending = nil
	}
	p.visible = false
}

// Suggestions returns up to n bank names close to the query, for display
// when the search matches nothing.
func (p *BankPicker) Suggestions(n int) []string {
	if p.State() != PickerEmpty || n <= 0 {
		return nil
	}
	return SuggestBanks(p.banks, p.query, n)
}

// SortBanks returns banks ordered by name using English collation. Equal
// names keep their input order.
func SortBanks(banks []model.Bank) []model.Bank {
	out := slices.Clone(banks)
	c := collate.New(language.English)
	slices.SortStableFunc(out, func(a, b model.Bank) int {
		return c.CompareString(a.Name, b.Name)
	})
	return out
}

// FilterBanks returns the banks whose name contains query, ignoring case. A
// blank query matches everything.
func FilterBanks(banks []model.Bank, query string) []model.Bank {
	if strings.TrimSpace(query) == "" {
		return slices.Clone(banks)
	}

	q := strings.ToLower(query)
	out := make([]model.Bank, 0, len(banks))
	for _, b := range banks {
		if strings.Contains(strings.ToLower(b.Name), q) {
			out = append(out, b)
		}
	}
	return out
}

// SuggestBanks ranks bank names by edit distance between the query and the
// closest word or prefix of each name.
func SuggestBanks(banks []model.Bank, query string, n int) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	limit := max(1, len([]rune(q))/3)

	type scored struct {
		name string
		dist int
	}
	var candidates []scored
	for _, b := range banks {
		d := nameDistance(strings.ToLower(b.Name), q)
		if d <= limit {
			candidates = append(candidates, scored{name: b.Name, dist: d})
		}
	}

	slices.SortStableFunc(candidates, func(a, b scored) int {
		return a.dist - b.dist
	})

	out := make([]string, 0, min(n, len(candidates)))
	for _, c := range candidates {
		if len(out) == n {
			break
		}
		out = append(out, c.name)
	}
	return out
}

func nameDistance(name, q string) int {
	best := levenshtein.ComputeDistance(name, q)

	runes := []rune(name)
	if len(runes) > len([]rune(q)) {
		best = min(best, levenshtein.ComputeDistance(string(runes[:len([]rune(q))]), q))
	}
	for _, word := range strings.Fields(name) {
		best = min(best, levenshtein.ComputeDistance(word, q))
	}
	return best
}
