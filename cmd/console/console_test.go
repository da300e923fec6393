package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/pharma-admin/modules"
	agentapi "github.com/iota-uz/pharma-admin/modules/agent/infrastructure/restapi"
	"github.com/iota-uz/pharma-admin/modules/doctor/infrastructure/restapi"
	"github.com/iota-uz/pharma-admin/pkg/configuration"
	"github.com/iota-uz/pharma-admin/pkg/mockapi"
)

type harness struct {
	backend *mockapi.Backend
	out     *bytes.Buffer
	errOut  *bytes.Buffer
	session *session
}

func newHarness(t *testing.T, stdin string) *harness {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	srv := mockapi.New(mockapi.Options{Logger: log})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	h := &harness{backend: srv.Backend, out: &bytes.Buffer{}, errOut: &bytes.Buffer{}}
	s, err := newSession(sessionOptions{
		Config: &configuration.Configuration{
			API:      configuration.APIOptions{BaseURL: ts.URL + "/"},
			PageSize: 10,
			Currency: "INR",
		},
		Logger:  log,
		In:      strings.NewReader(stdin),
		Out:     h.out,
		Err:     h.errOut,
		Modules: modules.BuiltInModules,
	})
	require.NoError(t, err)
	for _, mock := range s.app.Mocks() {
		mock(srv.Backend, true)
	}
	h.session = s
	return h
}

func (h *harness) run(args ...string) error {
	cmd := newRootCmd(h.session)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}

func TestConsole_ListDoctors(t *testing.T) {
	t.Parallel()
	h := newHarness(t, "")

	require.NoError(t, h.run("doctors", "list", "--search", "farah"))
	out := h.out.String()
	require.Contains(t, out, "Dr. Farah Khan")
	require.NotContains(t, out, "Dr. Asha Menon")
	require.Contains(t, out, "Doctors: 3 item(s)")
}

func TestConsole_CreateReportsValidationErrors(t *testing.T) {
	t.Parallel()
	h := newHarness(t, "")

	err := h.run("doctors", "create", "--set", "name=", "--set", "experience_years=90")
	require.Error(t, err)
	require.Equal(t, exitValidation, exitCode(err))
	require.Len(t, h.backend.Records(restapi.DoctorResource), 3)
}

func TestConsole_UnknownFieldIsUsageError(t *testing.T) {
	t.Parallel()
	h := newHarness(t, "")

	err := h.run("doctors", "create", "--set", "nickname=Doc")
	require.Error(t, err)
	require.Equal(t, exitUsage, exitCode(err))
	require.Contains(t, err.Error(), `unknown field "nickname"`)
}

func TestConsole_DeleteNeedsBothConfirmations(t *testing.T) {
	t.Parallel()
	h := newHarness(t, "y\nn\n")

	err := h.run("doctors", "delete", "2")
	require.Equal(t, exitCancelled, exitCode(err))
	require.Len(t, h.backend.Records(restapi.DoctorResource), 3)
	require.Contains(t, h.errOut.String(), "[info] Action cancelled")
}

func TestConsole_YesSkipsPrompts(t *testing.T) {
	t.Parallel()
	h := newHarness(t, "")

	require.NoError(t, h.run("doctors", "delete", "2", "--yes"))
	require.Len(t, h.backend.Records(restapi.DoctorResource), 2)

	require.NoError(t, h.run("doctors", "unpublish", "1", "--yes"))
	require.Equal(t, false, h.backend.Records(restapi.DoctorResource)[0]["status"])
}

func TestConsole_EditRemovesAndClearsRows(t *testing.T) {
	t.Parallel()
	h := newHarness(t, "")

	proof := filepath.Join(t.TempDir(), "pan.pdf")
	require.NoError(t, os.WriteFile(proof, []byte("%PDF-1.4\n%%EOF\n"), 0o600))

	require.NoError(t, h.run("agents", "edit", "1", "--remove", "villages[0]", "--clear", "areas", "--file", "id_proof="+proof))
	rec := h.backend.Records(agentapi.AgentResource)[0]
	require.Equal(t, []any{map[string]any{"name": "Saundatti", "area": "Belagavi"}}, rec["villages"])
	require.Equal(t, []any{}, rec["areas"])
	require.Contains(t, h.out.String(), "changed: ")
	require.Contains(t, h.out.String(), "/areas")

	h.out.Reset()
	require.NoError(t, h.run("agents", "edit", "1"))
	require.Contains(t, h.out.String(), "id_proof")
	require.Contains(t, h.out.String(), "/media/agent/1/id_proof/pan.pdf")
	require.Contains(t, h.out.String(), "no changes")

	err := h.run("agents", "edit", "1", "--remove", "villages[4]")
	require.Equal(t, exitUsage, exitCode(err))
	err = h.run("agents", "edit", "1", "--remove", "villages")
	require.Equal(t, exitUsage, exitCode(err))
	err = h.run("agents", "edit", "1", "--clear", "towns")
	require.Equal(t, exitUsage, exitCode(err))
}

func TestConsole_InvalidStatus(t *testing.T) {
	t.Parallel()
	h := newHarness(t, "")

	err := h.run("market-demands", "status", "1", "shipped", "--yes")
	require.Equal(t, exitUsage, exitCode(err))
	require.Contains(t, err.Error(), "pending, in_progress, fulfilled")
}

func TestConsole_FindAndDashboard(t *testing.T) {
	t.Parallel()
	h := newHarness(t, "")

	require.NoError(t, h.run("find", "coup"))
	require.Contains(t, h.out.String(), "console discount-codes list")

	h.out.Reset()
	require.NoError(t, h.run("dashboard"))
	out := h.out.String()
	require.Contains(t, out, "Doctors")
	require.Contains(t, out, "Inventory")
	require.NotContains(t, out, "unavailable")
}

func TestExitCode_APIFailure(t *testing.T) {
	t.Parallel()
	h := newHarness(t, "")

	err := h.run("doctors", "show", "99")
	require.Equal(t, exitAPI, exitCode(err))
}

func TestSession_WarnsOnExpiredToken(t *testing.T) {
	t.Parallel()
	h := newHarness(t, "")

	expired := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": expired.Unix()}).SignedString([]byte("secret"))
	require.NoError(t, err)
	h.session.app.Config().API.Token = token

	h.session.checkToken(expired.Add(time.Hour))
	require.Contains(t, h.errOut.String(), "API_TOKEN expired at 2025-01-01T00:00:00Z")

	h.errOut.Reset()
	h.session.checkToken(expired.Add(-time.Hour))
	require.Empty(t, h.errOut.String())
}
