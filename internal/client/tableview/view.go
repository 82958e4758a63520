// Package tableview holds the state of one transcription table on the
// client: filters, sort, selection, the inline edit target and column
// widths. Reads go through the client cache; writes invalidate it.
package tableview

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"transcript-control/internal/api/v1/dto"
	"transcript-control/internal/app/model"
	"transcript-control/internal/client/cache"
)

const (
	DefaultResizeDelay = time.Second
	DefaultPageSize    = 20
	saveTimeout        = 10 * time.Second
)

// FieldLanguage is the only inline-editable field
const FieldLanguage = "set_language"

var (
	ErrNoEdit           = errors.New("tableview: no edit in progress")
	ErrFieldNotEditable = errors.New("tableview: field is not editable")
	ErrNothingSelected  = errors.New("tableview: no rows selected")
	ErrInvalidWidth     = errors.New("tableview: column width must be positive")
)

// Backend is the slice of the REST client a View needs
type Backend interface {
	ListTranscriptions(ctx context.Context, q dto.ListTranscriptionsQuery) (*dto.PaginatedTranscriptionsResponse, error)
	DeleteTranscriptions(ctx context.Context, ids []int64) (int64, error)
	UpdateLanguage(ctx context.Context, id int64, language string) (*model.Transcription, error)
	LinkCalendar(ctx context.Context, id int64, entry model.CalendarEntry) (*model.Transcription, error)
	TableConfig(ctx context.Context, table string) ([]model.ColumnConfig, error)
	SaveTableConfig(ctx context.Context, table string, columns []model.ColumnConfig) ([]model.ColumnConfig, error)
}

// Filters narrow the server-side query
type Filters struct {
	Search   string
	Status   string
	Language string
}

// EditTarget identifies the single cell being edited
type EditTarget struct {
	RecordID int64
	Field    string
	Value    string
}

type Options struct {
	ResizeDelay time.Duration
	PageSize    int
	Logger      *zap.Logger
}

// View is safe for concurrent use.
type View struct {
	table   string
	backend Backend
	cache   *cache.Cache
	logger  *zap.Logger

	debouncer *Debouncer

	mu       sync.Mutex
	filters  Filters
	page     int
	limit    int
	sort     []SortRule
	selected map[int64]struct{}
	edit     *EditTarget
	columns  []model.ColumnConfig
	resized  map[string]int
	saveErr  error
}

func NewView(table string, backend Backend, c *cache.Cache, opts Options) *View {
	if opts.ResizeDelay <= 0 {
		opts.ResizeDelay = DefaultResizeDelay
	}
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &View{
		table:     table,
		backend:   backend,
		cache:     c,
		logger:    logger.Named("tableview").With(zap.String("table", table)),
		debouncer: NewDebouncer(opts.ResizeDelay),
		page:      1,
		limit:     opts.PageSize,
		selected:  make(map[int64]struct{}),
		resized:   make(map[string]int),
	}
}

func (v *View) Table() string { return v.table }

// SetFilters replaces the filters and returns to the first page when they change
func (v *View) SetFilters(f Filters) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if f != v.filters {
		v.filters = f
		v.page = 1
	}
}

func (v *View) Filters() Filters {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filters
}

func (v *View) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	v.mu.Lock()
	v.page = page
	v.mu.Unlock()
}

// SetSort replaces the sort rules. Unknown columns are ignored.
func (v *View) SetSort(rules ...SortRule) {
	v.mu.Lock()
	v.sort = append([]SortRule(nil), rules...)
	v.mu.Unlock()
}

// Query is the list request the current filters and page produce
func (v *View) Query() dto.ListTranscriptionsQuery {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.queryLocked()
}

func (v *View) queryLocked() dto.ListTranscriptionsQuery {
	return dto.ListTranscriptionsQuery{
		Page:     v.page,
		Limit:    v.limit,
		Search:   v.filters.Search,
		Status:   v.filters.Status,
		Language: v.filters.Language,
	}
}

// TranscriptionsKey is the cache key for one list query. Every key shares
// the "transcriptions" family so mutations can invalidate them together.
func TranscriptionsKey(q dto.ListTranscriptionsQuery) cache.Key {
	vals := url.Values{}
	vals.Set("page", strconv.Itoa(q.Page))
	vals.Set("limit", strconv.Itoa(q.Limit))
	if q.Search != "" {
		vals.Set("search", q.Search)
	}
	if q.Status != "" {
		vals.Set("status", q.Status)
	}
	if q.Language != "" {
		vals.Set("language", q.Language)
	}
	return cache.Key{"transcriptions", vals.Encode()}
}

func TableConfigKey(table string) cache.Key {
	return cache.Key{"table-config", table}
}

// Rows reads the current page through the cache and applies the sort
func (v *View) Rows(ctx context.Context) (*dto.PaginatedTranscriptionsResponse, error) {
	v.mu.Lock()
	q := v.queryLocked()
	rules := append([]SortRule(nil), v.sort...)
	v.mu.Unlock()

	val, err := v.cache.Read(ctx, TranscriptionsKey(q), v.listFetcher(q))
	if err != nil && val == nil {
		return nil, err
	}
	page, ok := val.(*dto.PaginatedTranscriptionsResponse)
	if !ok || page == nil {
		return nil, fmt.Errorf("tableview: unexpected cached value %T", val)
	}

	out := *page
	out.Data = sortRows(page.Data, rules)
	return &out, err
}

// Subscribe keeps the current page fresh, polling at interval when > 0
func (v *View) Subscribe(interval time.Duration) *cache.Subscription {
	q := v.Query()
	return v.cache.Subscribe(TranscriptionsKey(q), v.listFetcher(q), cache.SubscribeOptions{PollInterval: interval})
}

func (v *View) listFetcher(q dto.ListTranscriptionsQuery) cache.Fetcher {
	return func(ctx context.Context) (interface{}, error) {
		page, err := v.backend.ListTranscriptions(ctx, q)
		if err != nil {
			return nil, err
		}
		return page, nil
	}
}

// Selection

func (v *View) Select(ids ...int64) {
	v.mu.Lock()
	for _, id := range ids {
		v.selected[id] = struct{}{}
	}
	v.mu.Unlock()
}

func (v *View) Deselect(ids ...int64) {
	v.mu.Lock()
	for _, id := range ids {
		delete(v.selected, id)
	}
	v.mu.Unlock()
}

// Toggle flips the selection of id and reports the new state
func (v *View) Toggle(id int64) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.selected[id]; ok {
		delete(v.selected, id)
		return false
	}
	v.selected[id] = struct{}{}
	return true
}

func (v *View) ClearSelection() {
	v.mu.Lock()
	v.selected = make(map[int64]struct{})
	v.mu.Unlock()
}

func (v *View) IsSelected(id int64) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	_, ok := v.selected[id]
	return ok
}

// Selected returns the selected ids in ascending order
func (v *View) Selected() []int64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	ids := make([]int64, 0, len(v.selected))
	for id := range v.selected {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// DeleteSelected deletes every selected row. The selection is cleared
// only when the delete succeeds.
func (v *View) DeleteSelected(ctx context.Context) (int64, error) {
	ids := v.Selected()
	if len(ids) == 0 {
		return 0, ErrNothingSelected
	}

	deleted, err := v.backend.DeleteTranscriptions(ctx, ids)
	if err != nil {
		return 0, err
	}

	v.mu.Lock()
	for _, id := range ids {
		delete(v.selected, id)
	}
	if v.edit != nil && containsID(ids, v.edit.RecordID) {
		v.edit = nil
	}
	v.mu.Unlock()

	v.cache.Invalidate(cache.Key{"transcriptions"})
	return deleted, nil
}

func containsID(ids []int64, id int64) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

// Editing

// BeginEdit makes (id, field) the edit target, abandoning any previous one
func (v *View) BeginEdit(id int64, field, value string) error {
	if field != FieldLanguage {
		return fmt.Errorf("%w: %s", ErrFieldNotEditable, field)
	}
	v.mu.Lock()
	v.edit = &EditTarget{RecordID: id, Field: field, Value: value}
	v.mu.Unlock()
	return nil
}

func (v *View) SetEditValue(value string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.edit == nil {
		return ErrNoEdit
	}
	v.edit.Value = value
	return nil
}

func (v *View) Editing() (EditTarget, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.edit == nil {
		return EditTarget{}, false
	}
	return *v.edit, true
}

func (v *View) CancelEdit() {
	v.mu.Lock()
	v.edit = nil
	v.mu.Unlock()
}

// CommitEdit saves the edit target. On failure the target is kept so the
// caller can show the error next to the cell and retry.
func (v *View) CommitEdit(ctx context.Context) (*model.Transcription, error) {
	target, ok := v.Editing()
	if !ok {
		return nil, ErrNoEdit
	}

	updated, err := v.backend.UpdateLanguage(ctx, target.RecordID, target.Value)
	if err != nil {
		return nil, err
	}

	v.mu.Lock()
	// a newer BeginEdit may have replaced the target while the request ran
	if v.edit != nil && *v.edit == target {
		v.edit = nil
	}
	v.mu.Unlock()

	v.cache.Invalidate(cache.Key{"transcriptions"})
	return updated, nil
}

// LinkCalendar copies entry's snapshot onto the row
func (v *View) LinkCalendar(ctx context.Context, id int64, entry model.CalendarEntry) (*model.Transcription, error) {
	updated, err := v.backend.LinkCalendar(ctx, id, entry)
	if err != nil {
		return nil, err
	}
	v.cache.Invalidate(cache.Key{"transcriptions"})
	return updated, nil
}

// Columns

// LoadColumns reads the saved layout and lays the widths set through this
// view on top, so a stale read never undoes a resize.
func (v *View) LoadColumns(ctx context.Context) ([]model.ColumnConfig, error) {
	val, err := v.cache.Read(ctx, TableConfigKey(v.table), func(ctx context.Context) (interface{}, error) {
		cols, err := v.backend.TableConfig(ctx, v.table)
		if err != nil {
			return nil, err
		}
		return cols, nil
	})
	if err != nil && val == nil {
		return nil, err
	}
	stored, _ := val.([]model.ColumnConfig)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.columns = append([]model.ColumnConfig(nil), stored...)
	for name, width := range v.resized {
		v.setWidthLocked(name, width)
	}
	return append([]model.ColumnConfig(nil), v.columns...), err
}

func (v *View) Columns() []model.ColumnConfig {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]model.ColumnConfig(nil), v.columns...)
}

// ResizeColumn records the new width locally and schedules a save of the
// whole layout once resizing goes quiet. Widths below 1 are rejected and
// leave the layout untouched.
func (v *View) ResizeColumn(column string, width int) error {
	if width < 1 {
		return fmt.Errorf("%w: %s=%d", ErrInvalidWidth, column, width)
	}

	v.mu.Lock()
	v.resized[column] = width
	v.setWidthLocked(column, width)
	v.mu.Unlock()

	v.debouncer.Trigger(v.saveColumns)
	return nil
}

// setWidthLocked sets the width of column, appending it when unknown
func (v *View) setWidthLocked(column string, width int) {
	for i := range v.columns {
		if v.columns[i].ColumnName == column {
			v.columns[i].ColumnWidth = width
			return
		}
	}
	v.columns = append(v.columns, model.ColumnConfig{
		TableName:   v.table,
		ColumnName:  column,
		ColumnWidth: width,
		ColumnOrder: len(v.columns),
		IsVisible:   true,
	})
}

// SaveError returns the error of the last layout save, if it failed
func (v *View) SaveError() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.saveErr
}

func (v *View) saveColumns() {
	cols := v.Columns()

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	_, err := v.backend.SaveTableConfig(ctx, v.table, cols)

	v.mu.Lock()
	v.saveErr = err
	v.mu.Unlock()

	if err != nil {
		v.logger.Warn("Failed to save column layout", zap.Error(err), zap.Int("columns", len(cols)))
		return
	}
	v.logger.Debug("Column layout saved", zap.Int("columns", len(cols)))
	v.cache.Invalidate(TableConfigKey(v.table))
}

// Flush saves a pending layout change now
func (v *View) Flush() {
	v.debouncer.Flush()
}

// Close saves any pending layout change and stops the debouncer
func (v *View) Close() {
	v.debouncer.Flush()
	v.debouncer.Stop()
}
