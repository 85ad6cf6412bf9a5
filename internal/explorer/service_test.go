package explorer

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-datatable"
	"github.com/domonda/go-datatable/appstate"
)

const payloadJSON = `[
  {"cw_org": {"icon": "/icons/a.svg"}, "cw_project": {"projectName": "P1", "projectId": "PID1"}, "cw_unit": {"vintageYear": 2020}, "mode": "retire", "amount": 5, "timestamp": "2023-05-01T10:00:00Z"},
  {"cw_project": {"projectName": "P2"}, "mode": "transfer", "amount": 1.5},
  {"mode": null}
]`

func writePayload(t *testing.T) fs.File {
	t.Helper()
	file := fs.File(filepath.Join(t.TempDir(), "explorer.json"))
	require.NoError(t, file.WriteAll([]byte(payloadJSON)))
	return file
}

func newTestService(t *testing.T, pageSize int) *Service {
	t.Helper()
	ctx := context.Background()
	store := appstate.NewStore(ctx)
	svc := NewService(store, FilePayload{File: writePayload(t)}, pageSize, "en")
	require.NoError(t, svc.Load(ctx))
	return svc
}

func TestService_Load(t *testing.T) {
	svc := newTestService(t, 2)
	state := svc.Store().State()

	require.Len(t, state.ExplorerData, 3)
	assert.Equal(t, 2, state.PageCount())
	assert.False(t, state.ShowProgressOverlay)
	assert.Nil(t, state.ErrorMessage)

	first := state.ExplorerData[0]
	assert.Equal(t, "P1", first[appstate.KeyRegistryProjectID])
	assert.Equal(t, "PID1", first[appstate.KeyProjectName])
	assert.Equal(t, float64(2020), first[appstate.KeyVintageYear])
	assert.Equal(t, "retire", first[appstate.KeyAction])
}

func TestService_LoadError(t *testing.T) {
	ctx := context.Background()
	store := appstate.NewStore(ctx)
	missing := FilePayload{File: fs.File(filepath.Join(t.TempDir(), "missing.json"))}
	svc := NewService(store, missing, 10, "en")

	require.Error(t, svc.Load(ctx))
	state := store.State()
	assert.False(t, state.ShowProgressOverlay)
	require.NotNil(t, state.ErrorMessage)
	require.NotNil(t, state.Notification)
	assert.Equal(t, appstate.NotificationError, state.Notification.Kind)
	assert.NotEmpty(t, state.Notification.ID)
	assert.Nil(t, state.ExplorerData)

	// A later successful load clears the error
	svc.source = PayloadSourceFunc(func(context.Context) ([]map[string]any, error) {
		return []map[string]any{{"mode": "retire"}}, nil
	})
	require.NoError(t, svc.Load(ctx))
	assert.Nil(t, store.State().ErrorMessage)
}

func TestService_InvalidJSON(t *testing.T) {
	file := fs.File(filepath.Join(t.TempDir(), "explorer.json"))
	require.NoError(t, file.WriteAll([]byte(`{"not": "an array"}`)))
	_, err := FilePayload{File: file}.LoadPayload(context.Background())
	require.ErrorContains(t, err, "parsing explorer payload")
}

func TestService_Page(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, 2)

	table := svc.Page(ctx, 1, 480)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, 480, table.Height)
	assert.Equal(t, datatable.Pagination{CurrentPage: 1, NumberOfPages: 2}, table.Pagination.Pagination)

	labels := make([]string, len(table.Header))
	for i, h := range table.Header {
		labels[i] = h.Label
	}
	assert.Equal(t, []string{"", "Registry Project Id", "Project Name", "Vintage Year", "Action", "Quantity", "Datetime", "Actions"}, labels)

	row := table.Rows[0]
	require.Len(t, row.Cells, len(appstate.ExplorerHeadings)+1)
	assert.False(t, row.Cells[0].HasTooltip, "icon has no tooltip")
	assert.True(t, row.Cells[1].HasTooltip)
	assert.Equal(t, "P1", row.Cells[1].Tooltip)
	assert.False(t, row.Cells[3].HasTooltip, "vintage year has no tooltip")
	assert.Equal(t, "2020", row.Cells[3].Content)
	assert.Equal(t, "2023-05-01", row.Cells[6].Content)
	assert.Equal(t, "Details", row.Cells[7].Content)

	second := table.Rows[1]
	assert.Equal(t, datatable.NoValue, second.Cells[2].Content)
	assert.Equal(t, "1.5", second.Cells[5].Content)

	last := svc.Page(ctx, 99, 0)
	require.Len(t, last.Rows, 1)
	assert.Equal(t, 2, last.Pagination.CurrentPage)
}

func TestService_Interaction(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, 2)

	table := svc.Page(ctx, 1, 0)
	require.True(t, table.ClickRow(0, datatable.TargetRow))
	require.NotNil(t, svc.Store().State().Notification)
	assert.Equal(t, "retire P1", svc.Store().State().Notification.Message)

	require.False(t, table.ClickRow(1, datatable.TargetButton), "button clicks do not reach the row")

	require.True(t, table.Rows[1].PressButton())
	assert.Contains(t, svc.Store().State().Notification.Message, "Registry Project Id: P2")
	assert.Contains(t, svc.Store().State().Notification.Message, "Vintage Year: --")
}

func TestService_Record(t *testing.T) {
	svc := newTestService(t, 2)

	record, ok := svc.Record(2, 0)
	require.True(t, ok)
	assert.Nil(t, record[appstate.KeyAction])

	_, ok = svc.Record(2, 1)
	assert.False(t, ok)
	_, ok = svc.Record(1, -1)
	assert.False(t, ok)
}

func TestService_LocaleAndTheme(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, 0)

	require.NoError(t, svc.SetLocale(ctx, "de"))
	require.Error(t, svc.SetLocale(ctx, "fr"))
	assert.Equal(t, "de", svc.Store().State().LocaleOr(""))

	table := svc.Page(ctx, 1, 0)
	assert.Equal(t, "Aktionen", table.Header[len(table.Header)-1].Label)
	assert.Len(t, table.Rows, 3, "no paging with page size zero")

	assert.Equal(t, appstate.ThemeDark, svc.ToggleTheme(ctx))
	assert.Equal(t, appstate.ThemeLight, svc.ToggleTheme(ctx))
}

func TestService_Refresh(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, 2)

	var refreshing []bool
	unsubscribe := svc.Store().Subscribe(func(s *appstate.State) { refreshing = append(refreshing, s.Refresh) })
	defer unsubscribe()

	require.NoError(t, svc.Refresh(ctx))
	require.NotEmpty(t, refreshing)
	assert.True(t, refreshing[0])
	assert.False(t, svc.Store().State().Refresh)
}
