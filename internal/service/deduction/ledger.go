package deduction

import (
	"strings"
	"sync"
	"time"

	"github.com/nomina-ops/nomina-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// Field names one editable deduction input of an employee.
type Field string

const (
	FieldPurchases   Field = "purchases"
	FieldAdvance     Field = "advance"
	FieldOther       Field = "other"
	FieldExtraAmount Field = "extra_amount"
)

var FieldValues = []string{
	string(FieldPurchases),
	string(FieldAdvance),
	string(FieldOther),
	string(FieldExtraAmount),
}

// DefaultSettleWindow is how long an input stays quiet before its raw text
// is parsed and committed.
const DefaultSettleWindow = time.Second

type entryKey struct {
	companyKey   string
	employeeName string
}

type fieldKey struct {
	entryKey
	field Field
}

type draft struct {
	raw   string
	timer Timer
	gen   uint64
}

// Ledger holds session-scoped editable deductions keyed by (company,
// employee). Edits are committed per field after a settle window with no
// further typing; until then the raw text is tracked separately so the
// input widget echoes exactly what was typed. Each field debounces
// independently.
//
// The ledger must be closed when the owning view goes away; Close cancels
// every pending settle so nothing commits into a disposed ledger.
type Ledger struct {
	mu        sync.Mutex
	clock     Clock
	settle    time.Duration
	committed map[entryKey]payroll.Deductions
	drafts    map[fieldKey]*draft
	closed    bool
	gen       uint64
}

func NewLedger(clock Clock, settle time.Duration) *Ledger {
	if clock == nil {
		clock = NewRealClock()
	}
	if settle <= 0 {
		settle = DefaultSettleWindow
	}
	return &Ledger{
		clock:     clock,
		settle:    settle,
		committed: make(map[entryKey]payroll.Deductions),
		drafts:    make(map[fieldKey]*draft),
	}
}

// RecordEdit stores the raw text for display and restarts the field's
// settle timer. Edits to other fields of the same employee are not
// disturbed.
func (l *Ledger) RecordEdit(companyKey, employeeName string, field Field, rawText string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}

	fk := fieldKey{entryKey{companyKey, employeeName}, field}
	if d, ok := l.drafts[fk]; ok && d.timer != nil {
		d.timer.Stop()
	}

	l.gen++
	d := &draft{raw: rawText, gen: l.gen}
	l.drafts[fk] = d

	gen := d.gen
	d.timer = l.clock.AfterFunc(l.settle, func() {
		l.settleField(fk, gen)
	})
}

// settleField commits the draft if it is still the latest edit for the
// field. A timer that fired after a newer edit or after Close is stale and
// does nothing.
func (l *Ledger) settleField(fk fieldKey, gen uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}
	d, ok := l.drafts[fk]
	if !ok || d.gen != gen {
		return
	}
	delete(l.drafts, fk)

	value := parseAmount(d.raw)
	dd := l.committed[fk.entryKey]
	switch fk.field {
	case FieldPurchases:
		dd.Purchases = value
	case FieldAdvance:
		dd.Advance = value
	case FieldOther:
		dd.Other = value
	case FieldExtraAmount:
		dd.ExtraAmount = value
	}
	l.committed[fk.entryKey] = dd
}

// parseAmount degrades to zero: an empty or non-numeric input commits 0
// rather than failing, so payroll always has something to compute with.
func parseAmount(raw string) decimal.Decimal {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero
	}
	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero
	}
	return value
}

// Read returns the committed values for the employee. In-flight drafts are
// invisible here until they settle.
func (l *Ledger) Read(companyKey, employeeName string) payroll.Deductions {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.committed[entryKey{companyKey, employeeName}]
}

// ReadDisplayValue returns what the input widget should show: the raw
// in-flight text when one exists for the field, otherwise the committed
// value ("" when zero). The widget never jumps mid-typing.
func (l *Ledger) ReadDisplayValue(companyKey, employeeName string, field Field) string {
	l.mu.Lock()
	defer l.mu.Unlock()

	fk := fieldKey{entryKey{companyKey, employeeName}, field}
	if d, ok := l.drafts[fk]; ok {
		return d.raw
	}

	dd := l.committed[fk.entryKey]
	var value decimal.Decimal
	switch field {
	case FieldPurchases:
		value = dd.Purchases
	case FieldAdvance:
		value = dd.Advance
	case FieldOther:
		value = dd.Other
	case FieldExtraAmount:
		value = dd.ExtraAmount
	}
	if value.IsZero() {
		return ""
	}
	return value.String()
}

// Reset discards all committed values and pending drafts for one employee.
func (l *Ledger) Reset(companyKey, employeeName string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ek := entryKey{companyKey, employeeName}
	delete(l.committed, ek)
	for fk, d := range l.drafts {
		if fk.entryKey == ek {
			if d.timer != nil {
				d.timer.Stop()
			}
			delete(l.drafts, fk)
		}
	}
}

// Close cancels every pending settle. Edits recorded after Close are
// dropped.
func (l *Ledger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	for fk, d := range l.drafts {
		if d.timer != nil {
			d.timer.Stop()
		}
		delete(l.drafts, fk)
	}
}
