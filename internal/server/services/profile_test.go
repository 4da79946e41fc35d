package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Sandhya175/GrowlioBackend/internal/common"
	"github.com/Sandhya175/GrowlioBackend/internal/server/models"
)

func newProfileService(t *testing.T, rm *fakeRepoManager) (*ProfileService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newSQLMockDB(t)
	t.Cleanup(func() { db.Close() })
	return NewProfileService(db, rm), mock
}

func expectTx(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectCommit()
}

func TestSaveMember_InsertsWhenMissing(t *testing.T) {
	rm := &fakeRepoManager{members: &fakeMembersRepo{findIDErr: common.ErrNotFound}}
	s, mock := newProfileService(t, rm)
	expectTx(mock)

	m := &models.Member{PersonalInfo: []byte(`{"name":"alice"}`)}
	saved, err := s.SaveMember(context.Background(), "a-1", m)
	if err != nil {
		t.Fatalf("SaveMember error: %v", err)
	}
	if rm.members.inserted == nil {
		t.Fatal("expected an insert")
	}
	if saved.ID == "" || saved.AccountID != "a-1" {
		t.Fatalf("unexpected saved member: %+v", saved)
	}
}

func TestSaveMember_UpdatesWhenPresent(t *testing.T) {
	rm := &fakeRepoManager{members: &fakeMembersRepo{findIDOut: "m-1"}}
	s, mock := newProfileService(t, rm)
	expectTx(mock)

	m := &models.Member{PersonalInfo: []byte(`{"name":"alice"}`)}
	saved, err := s.SaveMember(context.Background(), "a-1", m)
	if err != nil {
		t.Fatalf("SaveMember error: %v", err)
	}
	if rm.members.updated == nil || rm.members.inserted != nil {
		t.Fatal("expected an update, not an insert")
	}
	if saved.ID != "m-1" {
		t.Fatalf("existing row id must be kept, got %s", saved.ID)
	}
}

func TestGetMember_NotFound(t *testing.T) {
	rm := &fakeRepoManager{members: &fakeMembersRepo{getErr: common.ErrNotFound}}
	s, _ := newProfileService(t, rm)

	_, err := s.GetMember(context.Background(), "a-1")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}

func TestAddNominee_WithGuardian(t *testing.T) {
	rm := &fakeRepoManager{
		members:  &fakeMembersRepo{findIDOut: "m-1"},
		nominees: &fakeNomineesRepo{},
	}
	s, mock := newProfileService(t, rm)
	expectTx(mock)

	n := &models.Nominee{
		NomineeName: "minor",
		Guardian:    &models.Guardian{GuardianName: "carol"},
	}
	saved, err := s.AddNominee(context.Background(), "a-1", n)
	if err != nil {
		t.Fatalf("AddNominee error: %v", err)
	}
	if saved.MemberID != "m-1" || saved.ID == "" {
		t.Fatalf("unexpected nominee: %+v", saved)
	}
	if rm.nominees.insertedGuardian == nil {
		t.Fatal("guardian row was not inserted")
	}
	if rm.nominees.insertedGuardian.NomineeID != saved.ID {
		t.Fatal("guardian not linked to nominee")
	}
}

func TestAddNominee_NoProfile(t *testing.T) {
	rm := &fakeRepoManager{
		members:  &fakeMembersRepo{findIDErr: common.ErrNotFound},
		nominees: &fakeNomineesRepo{},
	}
	s, _ := newProfileService(t, rm)

	_, err := s.AddNominee(context.Background(), "a-1", &models.Nominee{NomineeName: "bob"})
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}

func TestListNominees_NoProfileMeansEmpty(t *testing.T) {
	rm := &fakeRepoManager{
		members:  &fakeMembersRepo{findIDErr: common.ErrNotFound},
		nominees: &fakeNomineesRepo{},
	}
	s, _ := newProfileService(t, rm)

	got, err := s.ListNominees(context.Background(), "a-1")
	if err != nil {
		t.Fatalf("ListNominees error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %+v", got)
	}
}

func TestSaveInsurance_Upserts(t *testing.T) {
	rm := &fakeRepoManager{
		members:   &fakeMembersRepo{findIDOut: "m-1"},
		insurance: &fakeInsuranceRepo{findIDErr: common.ErrNotFound},
	}
	s, mock := newProfileService(t, rm)
	expectTx(mock)

	info := &models.InsuranceInfo{LoginID: "alice"}
	saved, err := s.SaveInsurance(context.Background(), "a-1", info)
	if err != nil {
		t.Fatalf("SaveInsurance error: %v", err)
	}
	if rm.insurance.inserted == nil || saved.MemberID != "m-1" {
		t.Fatalf("unexpected insurance save: %+v", saved)
	}
}

func TestSaveBusinessEntity_ReplacesStakeholders(t *testing.T) {
	rm := &fakeRepoManager{
		entities: &fakeBusinessEntitiesRepo{findIDOut: "e-1"},
	}
	s, mock := newProfileService(t, rm)
	expectTx(mock)

	e := &models.BusinessEntity{EntityName: "Acme LLP"}
	stakeholders := []models.Stakeholder{
		{StakeholderName: "dana", SharePercentage: 50},
		{StakeholderName: "eve", SharePercentage: 50},
	}
	saved, err := s.SaveBusinessEntity(context.Background(), "a-1", e, stakeholders)
	if err != nil {
		t.Fatalf("SaveBusinessEntity error: %v", err)
	}
	if saved.ID != "e-1" {
		t.Fatalf("existing entity id must be kept, got %s", saved.ID)
	}
	if rm.entities.updated == nil {
		t.Fatal("expected an update")
	}
	if len(rm.entities.insertedStakeholders) != 2 {
		t.Fatalf("expected 2 stakeholder inserts, got %d", len(rm.entities.insertedStakeholders))
	}
	for _, sh := range rm.entities.insertedStakeholders {
		if sh.EntityID != "e-1" || sh.ID == "" {
			t.Fatalf("stakeholder not bound to entity: %+v", sh)
		}
	}
}

func TestGetBusinessEntity(t *testing.T) {
	rm := &fakeRepoManager{
		entities: &fakeBusinessEntitiesRepo{
			getOut:  &models.BusinessEntity{ID: "e-1", EntityName: "Acme LLP"},
			listOut: []models.Stakeholder{{ID: "s-1", EntityID: "e-1"}},
		},
	}
	s, _ := newProfileService(t, rm)

	e, stakeholders, err := s.GetBusinessEntity(context.Background(), "a-1")
	if err != nil {
		t.Fatalf("GetBusinessEntity error: %v", err)
	}
	if e.EntityName != "Acme LLP" || len(stakeholders) != 1 {
		t.Fatalf("unexpected result: %+v %+v", e, stakeholders)
	}
}

func TestDashboardGet_EmptyAccount(t *testing.T) {
	rm := &fakeRepoManager{dashboard: &fakeDashboardRepo{}}
	sdb, _ := newSQLMockDB(t)
	defer sdb.Close()
	s := NewDashboardService(sdb, rm)

	got, err := s.Get(context.Background(), "a-1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Overview == nil || got.Transactions == nil {
		t.Fatal("empty dashboard must use empty slices, not nil")
	}
}

func TestDashboardGet_Error(t *testing.T) {
	rm := &fakeRepoManager{dashboard: &fakeDashboardRepo{overviewErr: sql.ErrConnDone}}
	sdb, _ := newSQLMockDB(t)
	defer sdb.Close()
	s := NewDashboardService(sdb, rm)

	_, err := s.Get(context.Background(), "a-1")
	if !errors.Is(err, sql.ErrConnDone) {
		t.Fatalf("want wrapped sql.ErrConnDone, got %v", err)
	}
}
