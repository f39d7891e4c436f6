package store

import (
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"

	"attendance/dashboard/internal/entity"

	"github.com/Azure/go-autorest/autorest/date"
)

var testToday = time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func newEmployee(name string) entity.Employee {
	return entity.Employee{
		Name:            name,
		Email:           name + "@example.com",
		Phone:           "(555) 000-0000",
		Department:      "Engineering",
		Designation:     "Junior Developer",
		JoinDate:        date.Date{Time: time.Date(2023, time.January, 2, 0, 0, 0, 0, time.UTC)},
		Status:          entity.EmployeeStatusActive,
		Address:         "1 Test Way",
		DaysPresent:     10,
		TotalLeaves:     24,
		RemainingLeaves: 20,
	}
}

func TestAddEmployeeAssignsFreshIDs(t *testing.T) {
	s := New(DefaultSeed(testToday))

	seen := map[string]bool{}
	for _, e := range s.Employees() {
		seen[e.ID] = true
	}

	for i := 0; i < 50; i++ {
		in := newEmployee(fmt.Sprintf("emp%d", i))
		in.ID = "1" // caller supplied ids are ignored

		got := s.AddEmployee(in)
		if got.ID == "" || seen[got.ID] {
			t.Fatalf("add %d: id %q is empty or reused", i, got.ID)
		}
		seen[got.ID] = true

		stored, ok := s.GetEmployeeByID(got.ID)
		if !ok {
			t.Fatalf("add %d: employee %q not found", i, got.ID)
		}
		if !reflect.DeepEqual(stored, got) {
			t.Fatalf("stored %+v, want %+v", stored, got)
		}
	}

	if n := len(s.Employees()); n != 54 {
		t.Fatalf("employees = %d, want 54", n)
	}
}

func TestGetEmployeeByIDMissing(t *testing.T) {
	s := New(DefaultSeed(testToday))

	if e, ok := s.GetEmployeeByID("nope"); ok || e != (entity.Employee{}) {
		t.Fatalf("expected absent result, got %+v %v", e, ok)
	}
}

func TestUpdateEmployeeMergesOnlyGivenFields(t *testing.T) {
	s := New(DefaultSeed(testToday))
	before, _ := s.GetEmployeeByID("2")

	if !s.UpdateEmployee("2", EmployeePatch{Phone: strPtr("(555) 111-2222"), RemainingLeaves: intPtr(0)}) {
		t.Fatalf("expected employee 2 to exist")
	}

	after, _ := s.GetEmployeeByID("2")
	want := before
	want.Phone = "(555) 111-2222"
	want.RemainingLeaves = 0
	if !reflect.DeepEqual(after, want) {
		t.Fatalf("after update %+v, want %+v", after, want)
	}
}

func leaveBalanceRule(merged entity.Employee) error {
	if merged.RemainingLeaves > merged.TotalLeaves {
		return fmt.Errorf("remaining %d exceeds total %d", merged.RemainingLeaves, merged.TotalLeaves)
	}
	return nil
}

func TestUpdateEmployeeCheckedRejectsWithoutChange(t *testing.T) {
	var notified int
	s := New(DefaultSeed(testToday), WithObserver(func(kind, op string) { notified++ }))
	before, _ := s.GetEmployeeByID("2")

	found, err := s.UpdateEmployeeChecked("2", EmployeePatch{
		Phone:           strPtr("(555) 999-0000"),
		RemainingLeaves: intPtr(before.TotalLeaves + 1),
	}, leaveBalanceRule)
	if !found || err == nil {
		t.Fatalf("found=%v err=%v, want found and a rule error", found, err)
	}

	after, _ := s.GetEmployeeByID("2")
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("rejected update changed the employee: %+v", after)
	}
	if notified != 0 {
		t.Fatalf("rejected update notified %d times", notified)
	}

	found, err = s.UpdateEmployeeChecked("ghost", EmployeePatch{}, leaveBalanceRule)
	if found || err != nil {
		t.Fatalf("missing id: found=%v err=%v", found, err)
	}
}

func TestUpdateEmployeeCheckedHoldsUnderConcurrentPatches(t *testing.T) {
	s := New(DefaultSeed(testToday))

	for i := 0; i < 200; i++ {
		s.UpdateEmployee("2", EmployeePatch{TotalLeaves: intPtr(10), RemainingLeaves: intPtr(5)})

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.UpdateEmployeeChecked("2", EmployeePatch{TotalLeaves: intPtr(5)}, leaveBalanceRule)
		}()
		go func() {
			defer wg.Done()
			s.UpdateEmployeeChecked("2", EmployeePatch{RemainingLeaves: intPtr(8)}, leaveBalanceRule)
		}()
		wg.Wait()

		e, _ := s.GetEmployeeByID("2")
		if e.RemainingLeaves > e.TotalLeaves {
			t.Fatalf("iteration %d: remaining %d > total %d", i, e.RemainingLeaves, e.TotalLeaves)
		}
	}
}

func TestUpdateMissingIDLeavesEverythingUnchanged(t *testing.T) {
	s := New(DefaultSeed(testToday))
	before := s.Export()

	if s.UpdateEmployee("ghost", EmployeePatch{Name: strPtr("Ghost")}) {
		t.Fatalf("update of missing employee reported found")
	}
	if s.UpdateAttendance("ghost", AttendancePatch{Status: strPtr("Late")}) {
		t.Fatalf("update of missing attendance reported found")
	}
	if s.UpdateLeaveRecord("ghost", LeaveRecordPatch{Status: strPtr("Rejected")}) {
		t.Fatalf("update of missing leave reported found")
	}
	if s.UpdateDesignation("ghost", DesignationPatch{Name: strPtr("X")}) {
		t.Fatalf("update of missing designation reported found")
	}
	if s.UpdateStatus("ghost", StatusPatch{Color: strPtr("#000")}) {
		t.Fatalf("update of missing status reported found")
	}

	if !reflect.DeepEqual(before, s.Export()) {
		t.Fatalf("collections changed after updates on a missing id")
	}
}

func TestDeleteEmployeeCascades(t *testing.T) {
	s := New(Seed{
		Employees: []entity.Employee{
			{ID: "emp-1", Name: "One"},
			{ID: "emp-2", Name: "Two"},
		},
		Attendances: []entity.Attendance{
			{ID: "att-1", EmployeeID: "emp-1"},
			{ID: "att-2", EmployeeID: "emp-1"},
			{ID: "att-3", EmployeeID: "emp-2"},
		},
		LeaveRecords: []entity.LeaveRecord{
			{ID: "leave-1", EmployeeID: "emp-1"},
			{ID: "leave-2", EmployeeID: "emp-2"},
		},
		Designations: []entity.Designation{{ID: "des-1", Name: "Dev"}},
		Statuses:     []entity.Status{{ID: "status-1", Name: "Active"}},
	})

	if !s.DeleteEmployee("emp-1") {
		t.Fatalf("expected emp-1 to exist")
	}

	if _, ok := s.GetEmployeeByID("emp-1"); ok {
		t.Fatalf("emp-1 still present")
	}
	atts := s.Attendances()
	if len(atts) != 1 || atts[0].ID != "att-3" {
		t.Fatalf("attendances after cascade = %+v", atts)
	}
	leaves := s.LeaveRecords()
	if len(leaves) != 1 || leaves[0].ID != "leave-2" {
		t.Fatalf("leaves after cascade = %+v", leaves)
	}
	if len(s.Designations()) != 1 || len(s.Statuses()) != 1 {
		t.Fatalf("unrelated collections changed")
	}
}

func TestDeleteUnknownEmployeeKeepsOrphans(t *testing.T) {
	s := New(Seed{
		Attendances: []entity.Attendance{{ID: "att-1", EmployeeID: "ghost"}},
	})

	if s.DeleteEmployee("ghost") {
		t.Fatalf("delete of unknown employee reported found")
	}
	if len(s.Attendances()) != 1 {
		t.Fatalf("records were removed by a no-op delete")
	}
}

func TestOtherDeletesDoNotCascade(t *testing.T) {
	s := New(DefaultSeed(testToday))
	employees := len(s.Employees())

	s.DeleteDesignation("des-2")
	s.DeleteStatus("status-1")

	if len(s.Employees()) != employees {
		t.Fatalf("employees changed after designation/status delete")
	}
	e, _ := s.GetEmployeeByID("1")
	if e.Designation != "Senior Developer" || e.Status != "Active" {
		t.Fatalf("employee references rewritten: %+v", e)
	}
}

func TestGetAttendancesByEmployeeIDOrderAndEmpty(t *testing.T) {
	s := New(DefaultSeed(testToday))

	list := s.GetAttendancesByEmployeeID("2")
	if len(list) == 0 {
		t.Fatalf("expected seeded records for employee 2")
	}

	all := s.Attendances()
	var want []entity.Attendance
	for _, a := range all {
		if a.EmployeeID == "2" {
			want = append(want, a)
		}
	}
	if !reflect.DeepEqual(list, want) {
		t.Fatalf("order differs from collection order")
	}

	added := s.AddAttendance(entity.Attendance{EmployeeID: "2", Status: entity.AttendancePresent})
	list = s.GetAttendancesByEmployeeID("2")
	if list[len(list)-1].ID != added.ID {
		t.Fatalf("new record not appended last")
	}

	empty := s.GetAttendancesByEmployeeID("nobody")
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", empty)
	}
	if leaves := s.GetLeavesByEmployeeID("nobody"); leaves == nil || len(leaves) != 0 {
		t.Fatalf("expected empty non-nil leave slice, got %#v", leaves)
	}
}

func TestGetLeavesByEmployeeID(t *testing.T) {
	s := New(DefaultSeed(testToday))

	list := s.GetLeavesByEmployeeID("1")
	if len(list) != 2 || list[0].ID != "leave-1" || list[1].ID != "leave-3" {
		t.Fatalf("leaves for employee 1 = %+v", list)
	}
}

func TestAddDesignationRoundTrip(t *testing.T) {
	s := New(DefaultSeed(testToday))
	before := s.Designations()

	added := s.AddDesignation(entity.Designation{Name: "X", Department: "Engineering", Description: "d"})

	var found []entity.Designation
	for _, d := range s.Designations() {
		if d.Name == "X" {
			found = append(found, d)
		}
	}
	if len(found) != 1 {
		t.Fatalf("found %d designations named X", len(found))
	}
	got := found[0]
	if got.ID != added.ID || got.Department != "Engineering" || got.Description != "d" {
		t.Fatalf("unexpected designation %+v", got)
	}
	for _, d := range before {
		if d.ID == got.ID {
			t.Fatalf("id %q reused", got.ID)
		}
	}
}

func TestDeleteStatusIsIdempotent(t *testing.T) {
	s := New(DefaultSeed(testToday))

	if !s.DeleteStatus("status-2") {
		t.Fatalf("first delete should find status-2")
	}
	once := s.Export()

	if s.DeleteStatus("status-2") {
		t.Fatalf("second delete should be a no-op")
	}
	if !reflect.DeepEqual(once, s.Export()) {
		t.Fatalf("second delete changed state")
	}
}

func TestReadsAreCopies(t *testing.T) {
	s := New(DefaultSeed(testToday))

	emps := s.Employees()
	emps[0].Name = "Mutated"

	atts := s.GetAttendancesByEmployeeID("1")
	atts[0].Status = "Mutated"

	deps := s.Departments()
	deps[0] = "Mutated"

	e, _ := s.GetEmployeeByID("1")
	if e.Name != "John Doe" {
		t.Fatalf("employee mutated through read copy")
	}
	if len(s.Employees()) != 4 {
		t.Fatalf("employee slice mutated through read copy")
	}
	if s.GetAttendancesByEmployeeID("1")[0].Status == "Mutated" {
		t.Fatalf("attendance mutated through read copy")
	}
	if s.Departments()[0] != "Engineering" {
		t.Fatalf("departments mutated through read copy")
	}
}

func TestSeedIsCopied(t *testing.T) {
	seed := DefaultSeed(testToday)
	s := New(seed)

	seed.Employees[0].Name = "Changed after New"
	if e, _ := s.GetEmployeeByID("1"); e.Name != "John Doe" {
		t.Fatalf("store shares memory with its seed")
	}
}

func TestIDsAreNeverReused(t *testing.T) {
	calls := 0
	gen := func(prefix string) string {
		calls++
		// hand out the same two candidates over and over
		return fmt.Sprintf("%s-%d", prefix, calls%2)
	}
	s := New(Seed{}, WithIDGenerator(gen))

	first := s.AddStatus(entity.Status{Name: "A"})
	s.DeleteStatus(first.ID)
	second := s.AddStatus(entity.Status{Name: "B"})
	third := s.AddStatus(entity.Status{Name: "C"})

	ids := map[string]bool{first.ID: true}
	for _, id := range []string{second.ID, third.ID} {
		if ids[id] {
			t.Fatalf("id %q assigned twice", id)
		}
		ids[id] = true
	}
}

func TestSeedIDsAreReserved(t *testing.T) {
	s := New(DefaultSeed(testToday), WithIDGenerator(func(prefix string) string {
		return "leave-1"
	}))

	l := s.AddLeaveRecord(entity.LeaveRecord{EmployeeID: "1"})
	if l.ID == "leave-1" {
		t.Fatalf("generated id collides with seed id")
	}
}

func TestObserverSeesEffectiveMutations(t *testing.T) {
	counts := map[string]int{}
	s := New(DefaultSeed(testToday), WithObserver(func(kind, op string) {
		counts[kind+"/"+op]++
	}))

	perEmployee := len(s.GetAttendancesByEmployeeID("1"))
	leaves := len(s.GetLeavesByEmployeeID("1"))

	s.UpdateEmployee("missing", EmployeePatch{})
	s.DeleteEmployee("missing")
	s.DeleteEmployee("1")

	if counts["employee/update"] != 0 {
		t.Fatalf("no-op update observed")
	}
	if counts["employee/delete"] != 1 {
		t.Fatalf("employee deletes = %d", counts["employee/delete"])
	}
	if counts["attendance/delete"] != perEmployee || counts["leave_record/delete"] != leaves {
		t.Fatalf("cascade counts = %v", counts)
	}
}

func TestConcurrentAccess(t *testing.T) {
	s := New(DefaultSeed(testToday))

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				e := s.AddEmployee(newEmployee(fmt.Sprintf("w%d-%d", w, i)))
				s.AddAttendance(entity.Attendance{EmployeeID: e.ID, Status: entity.AttendanceLate})
				s.UpdateEmployee(e.ID, EmployeePatch{DaysPresent: intPtr(i)})
				_ = s.Attendances()
				if i%5 == 0 {
					s.DeleteEmployee(e.ID)
				}
			}
		}(w)
	}
	wg.Wait()

	// 8 workers * 25 adds, 5 of each worker's employees deleted with their records
	if got := len(s.Employees()); got != 4+8*20 {
		t.Fatalf("employees = %d", got)
	}
	if got := len(s.Attendances()); got != 30+8*20 {
		t.Fatalf("attendances = %d", got)
	}
}
