package vselect

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// Options configures a Select
type Options struct {
	Name          string          // Component name the select was created under
	LabelPath     string          // Path of the label inside container options
	ValuePath     string          // Path of the value inside container options; empty means the option itself
	Multiple      bool            // Allow several selected options
	Searchable    bool            // Enable query filtering
	SearchDelay   time.Duration   // Debounce delay for Search; 0 filters immediately
	MaxSelections int             // Upper bound in multiple mode; 0 means unlimited
	Accessor      *Accessor       // Accessor used for labels, values and binding; shared default when nil
	Logger        *slog.Logger    // Diagnostics; slog.Default() when nil
	Clock         clockwork.Clock // Clock driving the search debouncer; real clock when nil
}

// Select is the state of a select control without any rendering: the option
// list, the current query and its matches, the highlighted match and the
// selection, optionally written through to a host data tree.
//
// All methods are safe for concurrent use. Change listeners run on the
// goroutine that caused the change, which for debounced searches is the
// timer goroutine.
type Select struct {
	id       string
	opts     Options
	accessor *Accessor
	logger   *slog.Logger
	search   *Debouncer[string]

	mu        sync.Mutex
	items     []any
	query     string
	filtered  []int
	pointer   int
	selected  []any
	binding   *Binding
	bindRoot  any
	listeners []func(value any)
}

// NewSelect creates a select over items
func NewSelect(opts Options, items ...any) *Select {
	if opts.LabelPath == "" {
		opts.LabelPath = DefaultLabelPath
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	s := &Select{
		id:       uuid.NewString(),
		opts:     opts,
		accessor: opts.Accessor,
		logger:   opts.Logger.With(slog.String("component", LogComponent), slog.String("name", opts.Name)),
		items:    append([]any(nil), items...),
	}
	if opts.Searchable && opts.SearchDelay > 0 {
		var debounceOpts []DebounceOption
		if opts.Clock != nil {
			debounceOpts = append(debounceOpts, WithClock(opts.Clock))
		}
		s.search = NewDebouncer(opts.SearchDelay, s.Filter, debounceOpts...)
	}

	s.mu.Lock()
	s.refilterLocked()
	s.mu.Unlock()
	return s
}

// ID returns the unique identifier of this select
func (s *Select) ID() string {
	return s.id
}

// pathAccessor returns the configured accessor, or the current default one
func (s *Select) pathAccessor() *Accessor {
	if s.accessor != nil {
		return s.accessor
	}
	return getDefaultAccessor()
}

// Options returns the options the select was created with
func (s *Select) Options() Options {
	return s.opts
}

// Close drops a pending debounced search
func (s *Select) Close() {
	if s.search != nil {
		s.search.Stop()
	}
}

// SetItems replaces the option list and reapplies the current query.
// The selection is kept.
func (s *Select) SetItems(items []any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append([]any(nil), items...)
	s.refilterLocked()
}

// Items returns a copy of the option list
func (s *Select) Items() []any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]any(nil), s.items...)
}

// Load replaces the option list with the items of src
func (s *Select) Load(ctx context.Context, src OptionSource) error {
	items, err := src.Load(ctx)
	if err != nil {
		ReportError(s.logger, "loading options failed", slog.String("error", err.Error()))
		return err
	}
	s.SetItems(items)
	return nil
}

// Label renders item for display. Primitive items render as themselves;
// container items render the value at LabelPath.
func (s *Select) Label(item any) string {
	if KindOf(item) == KindContainer {
		v, err := s.pathAccessor().Get(s.opts.LabelPath, item)
		if err != nil || v == nil {
			return ""
		}
		return fmt.Sprint(v)
	}
	if item == nil {
		return ""
	}
	return fmt.Sprint(item)
}

// ValueOf returns the value item contributes to the selection: the value
// at ValuePath for container items, the item itself otherwise.
func (s *Select) ValueOf(item any) any {
	if s.opts.ValuePath == "" || KindOf(item) != KindContainer {
		return item
	}
	v, err := s.pathAccessor().Get(s.opts.ValuePath, item)
	if err != nil {
		return nil
	}
	return v
}

// Search records query and filters the options, after SearchDelay when one is set
func (s *Select) Search(query string) {
	if s.search != nil {
		s.search.Call(query)
		return
	}
	s.Filter(query)
}

// Filter records query and filters the options immediately.
// The highlight moves back to the first match.
func (s *Select) Filter(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = query
	s.refilterLocked()
}

// Query returns the last applied query
func (s *Select) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// Filtered returns the options matching the current query
func (s *Select) Filtered() []any {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]any, len(s.filtered))
	for i, idx := range s.filtered {
		out[i] = s.items[idx]
	}
	return out
}

// Highlighted returns the position within Filtered and the highlighted option
func (s *Select) Highlighted() (int, any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pointer < 0 || s.pointer >= len(s.filtered) {
		return -1, nil, false
	}
	return s.pointer, s.items[s.filtered[s.pointer]], true
}

// MoveHighlight moves the highlight by delta, staying within the matches.
// It returns the new position, -1 when nothing matches.
func (s *Select) MoveHighlight(delta int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pointer = Mid(0, s.pointer+delta, len(s.filtered)-1)
	return s.pointer
}

// SetHighlight moves the highlight to position i, clamped to the matches
func (s *Select) SetHighlight(i int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pointer = Mid(0, i, len(s.filtered)-1)
	return s.pointer
}

// Choose selects item. In multiple mode choosing a selected item deselects it.
func (s *Select) Choose(item any) error {
	s.mu.Lock()
	idx := s.indexOfLocked(item)
	if idx < 0 {
		s.mu.Unlock()
		return newOperationError("choose", fmt.Sprintf("%v is not an option", item), ErrUnknownOption)
	}
	return s.chooseLocked(s.items[idx])
}

// ChooseHighlighted selects the highlighted option
func (s *Select) ChooseHighlighted() error {
	s.mu.Lock()
	if s.pointer < 0 || s.pointer >= len(s.filtered) {
		s.mu.Unlock()
		return newOperationError("choose", "no option is highlighted", ErrUnknownOption)
	}
	return s.chooseLocked(s.items[s.filtered[s.pointer]])
}

// chooseLocked expects s.mu to be held and releases it
func (s *Select) chooseLocked(item any) error {
	if !s.opts.Multiple {
		s.selected = []any{item}
		return s.commitLocked()
	}

	if pos := s.selectedPosLocked(item); pos >= 0 {
		s.selected = append(s.selected[:pos:pos], s.selected[pos+1:]...)
		return s.commitLocked()
	}
	if s.opts.MaxSelections > 0 && len(s.selected) >= s.opts.MaxSelections {
		s.mu.Unlock()
		return newOperationError("choose",
			fmt.Sprintf("at most %d options can be selected", s.opts.MaxSelections), ErrSelectionLimit)
	}
	s.selected = append(s.selected, item)
	return s.commitLocked()
}

// Deselect removes item from the selection and reports whether it was selected
func (s *Select) Deselect(item any) (bool, error) {
	s.mu.Lock()
	pos := s.selectedPosLocked(item)
	if pos < 0 {
		s.mu.Unlock()
		return false, nil
	}
	s.selected = append(s.selected[:pos:pos], s.selected[pos+1:]...)
	return true, s.commitLocked()
}

// Clear empties the selection
func (s *Select) Clear() error {
	s.mu.Lock()
	s.selected = nil
	return s.commitLocked()
}

// Selected returns the selected options
func (s *Select) Selected() []any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]any(nil), s.selected...)
}

// IsSelected reports whether item is part of the selection
func (s *Select) IsSelected(item any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedPosLocked(item) >= 0
}

// Value returns the bound value: the selected option's value (or nil) in
// single mode, a slice of values in multiple mode.
func (s *Select) Value() any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.valueLocked()
}

func (s *Select) valueLocked() any {
	if s.opts.Multiple {
		values := make([]any, len(s.selected))
		for i, item := range s.selected {
			values[i] = s.ValueOf(item)
		}
		return values
	}
	if len(s.selected) == 0 {
		return nil
	}
	return s.ValueOf(s.selected[0])
}

// OnChange registers fn to receive the new Value after every selection change
func (s *Select) OnChange(fn func(value any)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// BindModel ties the selection to path under root. The current value at
// path selects the matching options; every later change writes Value back.
func (s *Select) BindModel(path any, root any) error {
	binding, err := s.pathAccessor().Model(path)
	if err != nil {
		return err
	}
	current, kind, err := binding.Lookup(root)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.binding = binding
	s.bindRoot = root
	if kind != KindMissing && IsSet(current) {
		s.selected = s.matchValuesLocked(current)
	}
	return nil
}

// commitLocked writes the selection through the binding, then notifies
// listeners. It expects s.mu to be held and releases it.
func (s *Select) commitLocked() error {
	value := s.valueLocked()
	binding, root := s.binding, s.bindRoot
	listeners := slices.Clone(s.listeners)
	s.mu.Unlock()

	if binding != nil {
		if _, err := binding.Set(root, value); err != nil {
			ReportError(s.logger, "writing bound value failed",
				slog.String("path", binding.Path().String()),
				slog.String("error", err.Error()))
			return err
		}
	}
	for _, fn := range listeners {
		fn(value)
	}
	return nil
}

func (s *Select) matchValuesLocked(current any) []any {
	wanted := []any{current}
	if s.opts.Multiple {
		if list, ok := current.([]any); ok {
			wanted = list
		}
	}

	var matched []any
	for _, w := range wanted {
		for _, item := range s.items {
			if reflect.DeepEqual(s.ValueOf(item), w) {
				matched = append(matched, item)
				break
			}
		}
		if !s.opts.Multiple && len(matched) > 0 {
			break
		}
	}
	return matched
}

func (s *Select) indexOfLocked(item any) int {
	for i, candidate := range s.items {
		if reflect.DeepEqual(candidate, item) {
			return i
		}
	}
	return -1
}

func (s *Select) selectedPosLocked(item any) int {
	for i, candidate := range s.selected {
		if reflect.DeepEqual(candidate, item) {
			return i
		}
	}
	return -1
}
