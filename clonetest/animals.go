// Package clonetest provides fixtures and assertions for testing clone
// implementations.
package clonetest

import "github.com/zoobzio/dolly"

// Pet is the polymorphic view shared by every concrete animal.
type Pet interface {
	dolly.Cloneable
	Base() *Animal
}

// Owner is a single reference field cloned through Cloner.
type Owner struct {
	Name  string
	Phone string
}

// Clone implements Cloner[*Owner].
func (o *Owner) Clone() *Owner {
	c := *o
	return &c
}

// Animal is the root level of the animal hierarchy.
type Animal struct {
	Name string
	Age  int
	Tags []string
}

// Base returns the root level of any animal.
func (a *Animal) Base() *Animal { return a }

// Populate copies the Animal level into target.
func (a *Animal) Populate(target *Animal) {
	target.Name = a.Name
	target.Age = a.Age
	target.Tags = dolly.CloneSlice(a.Tags)
}

// Mammal is the middle level of the animal hierarchy.
type Mammal struct {
	Animal
	Legs     int
	FurColor string
}

// Populate copies the Animal and Mammal levels into target.
func (m *Mammal) Populate(target *Mammal) {
	m.Animal.Populate(&target.Animal)
	target.Legs = m.Legs
	target.FurColor = m.FurColor
}

// Dog is a leaf of the animal hierarchy.
type Dog struct {
	Mammal
	Breed   string
	Trained bool
	Owner   *Owner
}

// Allocate implements Template[*Dog].
func (d *Dog) Allocate() *Dog { return &Dog{} }

// Populate implements Template[*Dog].
func (d *Dog) Populate(target *Dog) {
	d.Mammal.Populate(&target.Mammal)
	target.Breed = d.Breed
	target.Trained = d.Trained
	target.Owner = dolly.Value(d.Owner)
}

// Clone returns an independent copy of d.
func (d *Dog) Clone() *Dog { return dolly.Clone(d) }

// CloneAny implements Cloneable.
func (d *Dog) CloneAny() any { return d.Clone() }

// Cat is a sibling leaf of Dog.
type Cat struct {
	Mammal
	Indoor      bool
	FavoriteToy string
}

// Allocate implements Template[*Cat].
func (c *Cat) Allocate() *Cat { return &Cat{} }

// Populate implements Template[*Cat].
func (c *Cat) Populate(target *Cat) {
	c.Mammal.Populate(&target.Mammal)
	target.Indoor = c.Indoor
	target.FavoriteToy = c.FavoriteToy
}

// Clone returns an independent copy of c.
func (c *Cat) Clone() *Cat { return dolly.Clone(c) }

// CloneAny implements Cloneable.
func (c *Cat) CloneAny() any { return c.Clone() }

// Shelter holds a polymorphic collection of animals.
type Shelter struct {
	Name    string
	Animals []Pet
}

// Allocate implements Template[*Shelter]. The Animals slice starts empty, not nil.
func (s *Shelter) Allocate() *Shelter {
	return &Shelter{Animals: make([]Pet, 0, len(s.Animals))}
}

// Populate implements Template[*Shelter].
func (s *Shelter) Populate(target *Shelter) {
	target.Name = s.Name
	if s.Animals == nil {
		target.Animals = nil
		return
	}
	dolly.CloneSliceInto(&target.Animals, s.Animals)
}

// Clone returns an independent copy of s.
func (s *Shelter) Clone() *Shelter { return dolly.Clone(s) }

// CloneAny implements Cloneable.
func (s *Shelter) CloneAny() any { return s.Clone() }

// SampleDog returns a fully populated dog.
func SampleDog() *Dog {
	d := &Dog{
		Breed:   "Labrador",
		Trained: true,
		Owner:   &Owner{Name: "Alice", Phone: "555-0100"},
	}
	d.Name = "Rex"
	d.Age = 5
	d.Tags = []string{"friendly", "vaccinated"}
	d.Legs = 4
	d.FurColor = "Golden"
	return d
}

// SampleCat returns a fully populated cat.
func SampleCat() *Cat {
	c := &Cat{Indoor: true, FavoriteToy: "Mouse"}
	c.Name = "Whiskers"
	c.Age = 3
	c.Tags = []string{"shy"}
	c.Legs = 4
	c.FurColor = "Tabby"
	return c
}
