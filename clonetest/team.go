package clonetest

import (
	"github.com/zoobzio/dolly/graph"
)

// Member is the polymorphic view of anything that belongs to a team graph.
type Member interface {
	graph.Cloneable
	MemberName() string
}

// Team and Employee form an arbitrary cyclic graph: teams list employees,
// employees point back at their team, at their manager, and at their reports.
type Team struct {
	Name    string
	Lead    *Employee
	Members []*Employee
	Index   map[string]*Employee
	Guests  []Member
}

// MemberName implements Member.
func (t *Team) MemberName() string { return t.Name }

// Allocate implements graph.Template[*Team].
func (t *Team) Allocate() *Team {
	return &Team{Index: make(map[string]*Employee, len(t.Index))}
}

// PopulateIn implements graph.Template[*Team].
func (t *Team) PopulateIn(s *graph.Session, target *Team) {
	target.Name = t.Name
	target.Lead = graph.In(s, t.Lead)
	target.Members = graph.Slice(s, t.Members)
	if t.Index == nil {
		target.Index = nil
	} else {
		graph.MapInto(s, target.Index, t.Index)
	}
	target.Guests = graph.Slice(s, t.Guests)
}

// CloneIn implements graph.Cloneable.
func (t *Team) CloneIn(s *graph.Session) any { return graph.In(s, t) }

// Employee is a team member.
type Employee struct {
	Name    string
	Skills  []string
	Team    *Team
	Manager *Employee
	Reports []*Employee
}

// MemberName implements Member.
func (e *Employee) MemberName() string { return e.Name }

// Allocate implements graph.Template[*Employee].
func (e *Employee) Allocate() *Employee { return &Employee{} }

// PopulateIn implements graph.Template[*Employee].
func (e *Employee) PopulateIn(s *graph.Session, target *Employee) {
	target.Name = e.Name
	target.Skills = graph.Slice(s, e.Skills)
	target.Team = graph.In(s, e.Team)
	target.Manager = graph.In(s, e.Manager)
	target.Reports = graph.Slice(s, e.Reports)
}

// CloneIn implements graph.Cloneable.
func (e *Employee) CloneIn(s *graph.Session) any { return graph.In(s, e) }

// SampleTeam returns a team of three with a manager cycle and a lead
// that is also a member.
func SampleTeam() *Team {
	t := &Team{Name: "platform", Index: map[string]*Employee{}}
	boss := &Employee{Name: "Ada", Skills: []string{"go", "ops"}, Team: t}
	dev := &Employee{Name: "Linus", Skills: []string{"c"}, Team: t, Manager: boss}
	ops := &Employee{Name: "Grace", Skills: []string{"cobol"}, Team: t, Manager: boss}
	boss.Reports = []*Employee{dev, ops}
	boss.Manager = boss

	t.Lead = boss
	t.Members = []*Employee{boss, dev, ops}
	for _, m := range t.Members {
		t.Index[m.Name] = m
	}
	t.Guests = []Member{ops, t}
	return t
}
