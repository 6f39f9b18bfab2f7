// Package kernel contains shared value objects used across the domain model.
// It provides the UUID identifier type and the constructor guard pattern that
// keeps domain objects from being used without going through their
// constructors.
package kernel
