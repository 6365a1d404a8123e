package providers_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/fedstack/federation-registry/internal/providers"
	"github.com/fedstack/federation-registry/migrations"
	"github.com/fedstack/federation-registry/pkg/pagination"
	"github.com/fedstack/federation-registry/pkg/repository"
	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// EnvTestDSN points the integration tests at a disposable database. When it
// is unset the tests are skipped.
const EnvTestDSN = "REGISTRY_TEST_DSN"

var (
	testDBOnce sync.Once
	testDB     *sql.DB
	testDBErr  error
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv(EnvTestDSN)
	if dsn == "" {
		t.Skipf("set %s to run database integration tests", EnvTestDSN)
	}

	testDBOnce.Do(func() {
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			testDBErr = err
			return
		}
		if err := migrateTestDB(db); err != nil {
			testDBErr = err
			return
		}
		testDB = db
	})
	if testDBErr != nil {
		t.Fatalf("open test database: %v", testDBErr)
	}
	return testDB
}

func migrateTestDB(db *sql.DB) error {
	source, err := iofs.New(migrations.Files, ".")
	if err != nil {
		return err
	}
	driver, err := pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", source, "pgx", driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func newTestSystem(t *testing.T, dispatcher providers.EvaluationDispatcher) (providers.System, *sql.DB) {
	t.Helper()

	db := openTestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}
	return providers.New(db, logger, cfg, dispatcher), db
}

func createTestUser(t *testing.T, db *sql.DB, name string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.ExecContext(context.Background(), `
		INSERT INTO users (id, sub, issuer, name, email)
		VALUES ($1, $2, $3, $4, $5)`,
		id, id.String(), "https://test.example.org", name, name+"@test.example.org",
	)
	if err != nil {
		t.Fatalf("create test user: %v", err)
	}
	t.Cleanup(func() {
		db.ExecContext(context.Background(), "DELETE FROM users WHERE id = $1", id)
	})
	return id
}

func testCreateCommand(admins ...uuid.UUID) providers.CreateCommand {
	suffix := uuid.NewString()
	return providers.CreateCommand{
		Name:          "provider-" + suffix,
		Description:   "integration fixture",
		Type:          providers.KindOpenStack,
		AuthEndpoint:  "https://keystone-" + suffix + ".test.example.org:5000/v3",
		IsPublic:      true,
		SupportEmails: []string{"support@test.example.org"},
		ImageTags:     []string{"linux"},
		SiteAdmins:    admins,
	}
}

func createTestProvider(t *testing.T, system providers.System, actor uuid.UUID, admins ...uuid.UUID) *providers.Provider {
	t.Helper()

	p, err := system.Create(context.Background(), testCreateCommand(admins...), actor)
	if err != nil {
		t.Fatalf("create test provider: %v", err)
	}
	t.Cleanup(func() {
		db := testDB
		db.ExecContext(context.Background(), "DELETE FROM providers WHERE id = $1", p.ID)
	})
	return p
}

// forceStatus drives a provider through the lifecycle graph one legal edge at
// a time until it reaches the target status.
func forceStatus(t *testing.T, system providers.System, id uuid.UUID, actor uuid.UUID, target providers.Status) *providers.Provider {
	t.Helper()

	path := map[providers.Status][]providers.Status{
		providers.StatusSubmitted:     {providers.StatusSubmitted},
		providers.StatusReady:         {providers.StatusSubmitted, providers.StatusReady},
		providers.StatusEvaluation:    {providers.StatusSubmitted, providers.StatusReady, providers.StatusEvaluation},
		providers.StatusPreProduction: {providers.StatusSubmitted, providers.StatusReady, providers.StatusEvaluation, providers.StatusPreProduction},
		providers.StatusActive:        {providers.StatusSubmitted, providers.StatusReady, providers.StatusEvaluation, providers.StatusPreProduction, providers.StatusActive},
	}

	var p *providers.Provider
	var err error
	for _, next := range path[target] {
		p, err = system.ChangeStatus(context.Background(), id, next, actor)
		if err != nil {
			t.Fatalf("transition to %s: %v", next, err)
		}
	}
	return p
}

func TestCreateAndFindProvider(t *testing.T) {
	system, db := newTestSystem(t, nil)
	actor := createTestUser(t, db, "actor")
	admin := createTestUser(t, db, "admin")

	cmd := testCreateCommand(admin)
	created, err := system.Create(context.Background(), cmd, actor)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	t.Cleanup(func() {
		db.ExecContext(context.Background(), "DELETE FROM providers WHERE id = $1", created.ID)
	})

	if created.Status != providers.StatusDraft {
		t.Errorf("Status = %s, want draft", created.Status)
	}
	if created.CreatedBy != actor || created.UpdatedBy != actor {
		t.Errorf("audit = %s/%s, want actor %s", created.CreatedBy, created.UpdatedBy, actor)
	}
	if len(created.SiteAdmins) != 1 || created.SiteAdmins[0] != admin {
		t.Errorf("SiteAdmins = %v, want [%s]", created.SiteAdmins, admin)
	}

	found, err := system.Find(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Find() error: %v", err)
	}
	if found.Name != cmd.Name || found.Type != cmd.Type {
		t.Errorf("Find() = %s/%s, want %s/%s", found.Name, found.Type, cmd.Name, cmd.Type)
	}
	if len(found.SupportEmails) != 1 || found.SupportEmails[0] != "support@test.example.org" {
		t.Errorf("SupportEmails = %v", found.SupportEmails)
	}
}

func TestCreateProviderValidation(t *testing.T) {
	system, db := newTestSystem(t, nil)
	actor := createTestUser(t, db, "actor")
	admin := createTestUser(t, db, "admin")

	t.Run("no site admins", func(t *testing.T) {
		cmd := testCreateCommand()
		if _, err := system.Create(context.Background(), cmd, actor); !errors.Is(err, providers.ErrLastSiteAdmin) {
			t.Errorf("Create() error = %v, want ErrLastSiteAdmin", err)
		}
	})

	t.Run("no support emails", func(t *testing.T) {
		cmd := testCreateCommand(admin)
		cmd.SupportEmails = nil
		if _, err := system.Create(context.Background(), cmd, actor); !errors.Is(err, providers.ErrNoSupportEmails) {
			t.Errorf("Create() error = %v, want ErrNoSupportEmails", err)
		}
	})

	t.Run("unknown admin rolls back", func(t *testing.T) {
		cmd := testCreateCommand(uuid.New())
		if _, err := system.Create(context.Background(), cmd, actor); !errors.Is(err, providers.ErrUserNotFound) {
			t.Errorf("Create() error = %v, want ErrUserNotFound", err)
		}

		var n int
		db.QueryRowContext(context.Background(),
			"SELECT COUNT(*) FROM providers WHERE name = $1", cmd.Name).Scan(&n)
		if n != 0 {
			t.Error("provider row must not survive a failed membership insert")
		}
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		p := createTestProvider(t, system, actor, admin)

		cmd := testCreateCommand(admin)
		cmd.Name = p.Name
		_, err := system.Create(context.Background(), cmd, actor)

		var conflict *repository.ConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("Create() error = %v, want *ConflictError", err)
		}
		if conflict.Attribute != "name" {
			t.Errorf("Attribute = %q, want name", conflict.Attribute)
		}
	})
}

func TestChangeStatus(t *testing.T) {
	system, db := newTestSystem(t, nil)
	actor := createTestUser(t, db, "actor")
	admin := createTestUser(t, db, "admin")

	p := createTestProvider(t, system, actor, admin)

	updated, err := system.ChangeStatus(context.Background(), p.ID, providers.StatusSubmitted, actor)
	if err != nil {
		t.Fatalf("ChangeStatus() error: %v", err)
	}
	if updated.Status != providers.StatusSubmitted {
		t.Errorf("Status = %s, want submitted", updated.Status)
	}

	t.Run("skipping a state is rejected", func(t *testing.T) {
		_, err := system.ChangeStatus(context.Background(), p.ID, providers.StatusActive, actor)

		var stateChange *providers.StateChangeError
		if !errors.As(err, &stateChange) {
			t.Fatalf("ChangeStatus() error = %v, want *StateChangeError", err)
		}
		if stateChange.From != providers.StatusSubmitted || stateChange.To != providers.StatusActive {
			t.Errorf("StateChangeError = %+v", stateChange)
		}
	})

	t.Run("same state refreshes audit", func(t *testing.T) {
		before, err := system.Find(context.Background(), p.ID)
		if err != nil {
			t.Fatalf("Find() error: %v", err)
		}

		after, err := system.ChangeStatus(context.Background(), p.ID, providers.StatusSubmitted, actor)
		if err != nil {
			t.Fatalf("ChangeStatus() error: %v", err)
		}
		if after.Status != providers.StatusSubmitted {
			t.Errorf("Status = %s, want submitted", after.Status)
		}
		if after.UpdatedAt.Before(before.UpdatedAt) {
			t.Error("same-state transition must refresh updated_at")
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := system.ChangeStatus(context.Background(), uuid.New(), providers.StatusSubmitted, actor)

		var notFound *repository.NotFoundError
		if !errors.As(err, &notFound) {
			t.Errorf("ChangeStatus() error = %v, want *NotFoundError", err)
		}
	})
}

func TestDeleteProvider(t *testing.T) {
	system, db := newTestSystem(t, nil)
	actor := createTestUser(t, db, "actor")
	admin := createTestUser(t, db, "admin")
	tester := createTestUser(t, db, "tester")

	t.Run("draft is hard deleted", func(t *testing.T) {
		p := createTestProvider(t, system, actor, admin)

		result, err := system.Delete(context.Background(), p.ID, actor)
		if err != nil {
			t.Fatalf("Delete() error: %v", err)
		}
		if result != nil {
			t.Errorf("Delete() = %+v, want nil for a hard delete", result)
		}

		_, err = system.Find(context.Background(), p.ID)
		var notFound *repository.NotFoundError
		if !errors.As(err, &notFound) {
			t.Errorf("Find() after delete error = %v, want *NotFoundError", err)
		}
	})

	t.Run("active is deprecated", func(t *testing.T) {
		p := createTestProvider(t, system, actor, admin)
		forceStatus(t, system, p.ID, actor, providers.StatusSubmitted)
		if _, err := system.AddSiteTesters(context.Background(), p.ID, []uuid.UUID{tester}, actor); err != nil {
			t.Fatalf("AddSiteTesters() error: %v", err)
		}
		forceStatus(t, system, p.ID, actor, providers.StatusActive)

		result, err := system.Delete(context.Background(), p.ID, actor)
		if err != nil {
			t.Fatalf("Delete() error: %v", err)
		}
		if result == nil || result.Status != providers.StatusDeprecated {
			t.Fatalf("Delete() = %+v, want deprecated provider", result)
		}
	})

	t.Run("submitted is removed", func(t *testing.T) {
		p := createTestProvider(t, system, actor, admin)
		forceStatus(t, system, p.ID, actor, providers.StatusSubmitted)

		result, err := system.Delete(context.Background(), p.ID, actor)
		if err != nil {
			t.Fatalf("Delete() error: %v", err)
		}
		if result == nil || result.Status != providers.StatusRemoved {
			t.Fatalf("Delete() = %+v, want removed provider", result)
		}

		// Removed is terminal; a second delete is a no-op transition.
		again, err := system.Delete(context.Background(), p.ID, actor)
		if err != nil {
			t.Fatalf("second Delete() error: %v", err)
		}
		if again == nil || again.Status != providers.StatusRemoved {
			t.Fatalf("second Delete() = %+v, want removed provider", again)
		}
	})
}

func TestSiteAdminMembership(t *testing.T) {
	system, db := newTestSystem(t, nil)
	actor := createTestUser(t, db, "actor")
	admin := createTestUser(t, db, "admin")
	second := createTestUser(t, db, "second")

	p := createTestProvider(t, system, actor, admin)

	updated, err := system.AddSiteAdmins(context.Background(), p.ID, []uuid.UUID{second}, actor)
	if err != nil {
		t.Fatalf("AddSiteAdmins() error: %v", err)
	}
	if len(updated.SiteAdmins) != 2 {
		t.Errorf("SiteAdmins = %v, want 2 entries", updated.SiteAdmins)
	}

	t.Run("adding is idempotent", func(t *testing.T) {
		again, err := system.AddSiteAdmins(context.Background(), p.ID, []uuid.UUID{second}, actor)
		if err != nil {
			t.Fatalf("AddSiteAdmins() error: %v", err)
		}
		if len(again.SiteAdmins) != 2 {
			t.Errorf("SiteAdmins = %v, want 2 entries", again.SiteAdmins)
		}
	})

	t.Run("unknown user is rejected", func(t *testing.T) {
		if _, err := system.AddSiteAdmins(context.Background(), p.ID, []uuid.UUID{uuid.New()}, actor); !errors.Is(err, providers.ErrUserNotFound) {
			t.Errorf("AddSiteAdmins() error = %v, want ErrUserNotFound", err)
		}
	})

	t.Run("removing down to one is fine", func(t *testing.T) {
		updated, err := system.RemoveSiteAdmin(context.Background(), p.ID, second, actor)
		if err != nil {
			t.Fatalf("RemoveSiteAdmin() error: %v", err)
		}
		if len(updated.SiteAdmins) != 1 {
			t.Errorf("SiteAdmins = %v, want 1 entry", updated.SiteAdmins)
		}
	})

	t.Run("last admin cannot be removed", func(t *testing.T) {
		if _, err := system.RemoveSiteAdmin(context.Background(), p.ID, admin, actor); !errors.Is(err, providers.ErrLastSiteAdmin) {
			t.Errorf("RemoveSiteAdmin() error = %v, want ErrLastSiteAdmin", err)
		}

		// The rejected removal must roll back.
		current, err := system.Find(context.Background(), p.ID)
		if err != nil {
			t.Fatalf("Find() error: %v", err)
		}
		if len(current.SiteAdmins) != 1 || current.SiteAdmins[0] != admin {
			t.Errorf("SiteAdmins = %v, want [%s]", current.SiteAdmins, admin)
		}
	})

	t.Run("removing a non-member fails", func(t *testing.T) {
		if _, err := system.RemoveSiteAdmin(context.Background(), p.ID, second, actor); !errors.Is(err, providers.ErrUserNotFound) {
			t.Errorf("RemoveSiteAdmin() error = %v, want ErrUserNotFound", err)
		}
	})
}

func TestSiteTesterMembership(t *testing.T) {
	system, db := newTestSystem(t, nil)
	actor := createTestUser(t, db, "actor")
	admin := createTestUser(t, db, "admin")
	tester := createTestUser(t, db, "tester")

	p := createTestProvider(t, system, actor, admin)

	t.Run("assignment requires submitted", func(t *testing.T) {
		if _, err := system.AddSiteTesters(context.Background(), p.ID, []uuid.UUID{tester}, actor); !errors.Is(err, providers.ErrTesterAssignment) {
			t.Errorf("AddSiteTesters() in draft error = %v, want ErrTesterAssignment", err)
		}
	})

	forceStatus(t, system, p.ID, actor, providers.StatusSubmitted)

	updated, err := system.AddSiteTesters(context.Background(), p.ID, []uuid.UUID{tester}, actor)
	if err != nil {
		t.Fatalf("AddSiteTesters() error: %v", err)
	}
	if len(updated.SiteTesters) != 1 || updated.SiteTesters[0] != tester {
		t.Errorf("SiteTesters = %v, want [%s]", updated.SiteTesters, tester)
	}

	t.Run("removable while not required", func(t *testing.T) {
		updated, err := system.RemoveSiteTester(context.Background(), p.ID, tester, actor)
		if err != nil {
			t.Fatalf("RemoveSiteTester() error: %v", err)
		}
		if len(updated.SiteTesters) != 0 {
			t.Errorf("SiteTesters = %v, want empty", updated.SiteTesters)
		}

		if _, err := system.AddSiteTesters(context.Background(), p.ID, []uuid.UUID{tester}, actor); err != nil {
			t.Fatalf("re-add tester: %v", err)
		}
	})

	t.Run("last tester protected during evaluation", func(t *testing.T) {
		if _, err := system.ChangeStatus(context.Background(), p.ID, providers.StatusReady, actor); err != nil {
			t.Fatalf("transition to ready: %v", err)
		}
		if _, err := system.ChangeStatus(context.Background(), p.ID, providers.StatusEvaluation, actor); err != nil {
			t.Fatalf("transition to evaluation: %v", err)
		}

		if _, err := system.RemoveSiteTester(context.Background(), p.ID, tester, actor); !errors.Is(err, providers.ErrLastSiteTester) {
			t.Errorf("RemoveSiteTester() error = %v, want ErrLastSiteTester", err)
		}

		current, err := system.Find(context.Background(), p.ID)
		if err != nil {
			t.Fatalf("Find() error: %v", err)
		}
		if len(current.SiteTesters) != 1 {
			t.Errorf("SiteTesters = %v, rejected removal must roll back", current.SiteTesters)
		}
	})
}

func TestUpdateProvider(t *testing.T) {
	system, db := newTestSystem(t, nil)
	actor := createTestUser(t, db, "actor")
	editor := createTestUser(t, db, "editor")
	admin := createTestUser(t, db, "admin")

	p := createTestProvider(t, system, actor, admin)

	name := p.Name + "-renamed"
	public := false
	cmd := providers.UpdateCommand{Name: &name, IsPublic: &public}

	updated, err := system.Update(context.Background(), p.ID, cmd, editor)
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	if updated.Name != name {
		t.Errorf("Name = %q, want %q", updated.Name, name)
	}
	if updated.IsPublic {
		t.Error("IsPublic = true, want false")
	}
	if updated.Description != p.Description {
		t.Errorf("Description changed: %q, want %q untouched", updated.Description, p.Description)
	}
	if updated.UpdatedBy != editor {
		t.Errorf("UpdatedBy = %s, want %s", updated.UpdatedBy, editor)
	}
	if updated.CreatedBy != actor {
		t.Errorf("CreatedBy = %s, must stay %s", updated.CreatedBy, actor)
	}

	t.Run("support emails cannot empty out", func(t *testing.T) {
		empty := []string{}
		cmd := providers.UpdateCommand{SupportEmails: &empty}
		if _, err := system.Update(context.Background(), p.ID, cmd, editor); !errors.Is(err, providers.ErrNoSupportEmails) {
			t.Errorf("Update() error = %v, want ErrNoSupportEmails", err)
		}
	})
}

func TestListProviders(t *testing.T) {
	system, db := newTestSystem(t, nil)
	actor := createTestUser(t, db, "actor")
	admin := createTestUser(t, db, "admin")

	p := createTestProvider(t, system, actor, admin)
	createTestProvider(t, system, actor, admin)

	t.Run("name filter narrows", func(t *testing.T) {
		result, err := system.List(context.Background(),
			pagination.PageRequest{},
			providers.Filters{Name: &p.Name},
		)
		if err != nil {
			t.Fatalf("List() error: %v", err)
		}
		if len(result.Data) != 1 || result.Data[0].ID != p.ID {
			t.Errorf("List() = %d items, want exactly the named provider", len(result.Data))
		}
		if len(result.Data[0].SiteAdmins) != 1 {
			t.Errorf("SiteAdmins = %v, memberships must load on list", result.Data[0].SiteAdmins)
		}
	})

	t.Run("status filter", func(t *testing.T) {
		status := providers.StatusDraft
		result, err := system.List(context.Background(),
			pagination.PageRequest{},
			providers.Filters{Status: &status},
		)
		if err != nil {
			t.Fatalf("List() error: %v", err)
		}
		if result.Page.TotalElements < 2 {
			t.Errorf("TotalElements = %d, want at least the two fixtures", result.Page.TotalElements)
		}
	})
}

// TestConcurrentAdminRemovals races two removals against a provider with two
// site admins. The provider row lock forces them to serialize, so exactly one
// succeeds and the admin set never empties out.
func TestConcurrentAdminRemovals(t *testing.T) {
	system, db := newTestSystem(t, nil)
	actor := createTestUser(t, db, "actor")
	adminA := createTestUser(t, db, "admin-a")
	adminB := createTestUser(t, db, "admin-b")

	p := createTestProvider(t, system, actor, adminA, adminB)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, userID := range []uuid.UUID{adminA, adminB} {
		wg.Add(1)
		go func(i int, userID uuid.UUID) {
			defer wg.Done()
			_, errs[i] = system.RemoveSiteAdmin(context.Background(), p.ID, userID, actor)
		}(i, userID)
	}
	wg.Wait()

	var rejected int
	for _, err := range errs {
		if err == nil {
			continue
		}
		rejected++
		if !errors.Is(err, providers.ErrLastSiteAdmin) {
			t.Errorf("removal error = %v, want ErrLastSiteAdmin", err)
		}
	}
	if rejected != 1 {
		t.Errorf("rejected removals = %d, want exactly 1", rejected)
	}

	current, err := system.Find(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("Find() error: %v", err)
	}
	if len(current.SiteAdmins) != 1 {
		t.Errorf("SiteAdmins = %v, the admin set must never become empty", current.SiteAdmins)
	}
}

// TestConcurrentNameUpdates races two writers over the same field. There is
// no version column: the accepted model is last-writer-wins, and exactly one
// of the two values persists.
func TestConcurrentNameUpdates(t *testing.T) {
	system, db := newTestSystem(t, nil)
	actor := createTestUser(t, db, "actor")
	admin := createTestUser(t, db, "admin")

	p := createTestProvider(t, system, actor, admin)
	nameA := p.Name + "-writer-a"
	nameB := p.Name + "-writer-b"

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, name := range []string{nameA, nameB} {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			cmd := providers.UpdateCommand{Name: &name}
			_, errs[i] = system.Update(context.Background(), p.ID, cmd, actor)
		}(i, name)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("writer %d error: %v", i, err)
		}
	}

	current, err := system.Find(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("Find() error: %v", err)
	}
	if current.Name != nameA && current.Name != nameB {
		t.Errorf("Name = %q, want one of the racing writers' values", current.Name)
	}
}

// TestConcurrentDisjointUpdatesMerge documents the update concurrency model:
// partial updates only write the supplied fields, so writers touching
// disjoint fields both land. Writers touching the same field are
// last-writer-wins; there is no version column.
func TestConcurrentDisjointUpdatesMerge(t *testing.T) {
	system, db := newTestSystem(t, nil)
	actor := createTestUser(t, db, "actor")
	admin := createTestUser(t, db, "admin")

	p := createTestProvider(t, system, actor, admin)

	name := p.Name + "-renamed"
	if _, err := system.Update(context.Background(), p.ID, providers.UpdateCommand{Name: &name}, actor); err != nil {
		t.Fatalf("first Update() error: %v", err)
	}

	desc := "updated concurrently"
	if _, err := system.Update(context.Background(), p.ID, providers.UpdateCommand{Description: &desc}, actor); err != nil {
		t.Fatalf("second Update() error: %v", err)
	}

	current, err := system.Find(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("Find() error: %v", err)
	}
	if current.Name != name {
		t.Errorf("Name = %q, the description write must not clobber it", current.Name)
	}
	if current.Description != desc {
		t.Errorf("Description = %q, want %q", current.Description, desc)
	}
}

type captureDispatcher struct {
	requests []providers.EvaluationRequest
}

func (d *captureDispatcher) Dispatch(_ context.Context, req providers.EvaluationRequest) error {
	d.requests = append(d.requests, req)
	return nil
}

type failingDispatcher struct{}

func (failingDispatcher) Dispatch(context.Context, providers.EvaluationRequest) error {
	return fmt.Errorf("broker unavailable")
}

func TestEvaluationDispatch(t *testing.T) {
	dispatcher := &captureDispatcher{}
	system, db := newTestSystem(t, dispatcher)
	actor := createTestUser(t, db, "actor")
	admin := createTestUser(t, db, "admin")

	p := createTestProvider(t, system, actor, admin)

	if len(dispatcher.requests) != 1 {
		t.Fatalf("Dispatch() called %d times, want 1", len(dispatcher.requests))
	}
	if dispatcher.requests[0].ProviderID != p.ID {
		t.Errorf("ProviderID = %s, want %s", dispatcher.requests[0].ProviderID, p.ID)
	}
	if dispatcher.requests[0].AuthEndpoint != p.AuthEndpoint {
		t.Errorf("AuthEndpoint = %s, want %s", dispatcher.requests[0].AuthEndpoint, p.AuthEndpoint)
	}
}

func TestEvaluationDispatchFailureDoesNotFailCreate(t *testing.T) {
	system, db := newTestSystem(t, failingDispatcher{})
	actor := createTestUser(t, db, "actor")
	admin := createTestUser(t, db, "admin")

	p := createTestProvider(t, system, actor, admin)

	found, err := system.Find(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("Find() error: %v", err)
	}
	if found.Status != providers.StatusDraft {
		t.Errorf("Status = %s, want draft", found.Status)
	}
}
