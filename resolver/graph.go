/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"fmt"
	"slices"

	"bennypowers.dev/tessera/token"
)

// DependencyGraph represents a directed graph of token references.
// Nodes are dotted leaf paths; an edge a -> b means a's value references b.
type DependencyGraph struct {
	dependencies map[string][]string
	dependents   map[string][]string
	nodes        []string
}

// BuildDependencyGraph builds a dependency graph from the leaves of a tree.
// References to paths that are not leaves add no edge.
func BuildDependencyGraph(tree token.Branch) *DependencyGraph {
	graph := &DependencyGraph{
		dependencies: make(map[string][]string),
		dependents:   make(map[string][]string),
	}

	_ = tree.Walk(func(path []string, lit token.Literal) error {
		name := token.JoinPath(path)
		graph.nodes = append(graph.nodes, name)
		if !lit.IsReference() {
			return nil
		}
		dep := lit.String()
		if _, ok := tree.Literal(dep); !ok {
			return nil
		}
		graph.dependencies[name] = append(graph.dependencies[name], dep)
		graph.dependents[dep] = append(graph.dependents[dep], name)
		return nil
	})

	return graph
}

// Dependencies returns the paths that the given path references.
func (g *DependencyGraph) Dependencies(path string) []string {
	if deps, ok := g.dependencies[path]; ok {
		return deps
	}
	return []string{}
}

// Dependents returns the paths that reference the given path.
func (g *DependencyGraph) Dependents(path string) []string {
	if deps, ok := g.dependents[path]; ok {
		return deps
	}
	return []string{}
}

// HasCycle returns true if the graph contains a circular reference.
func (g *DependencyGraph) HasCycle() bool {
	return g.FindCycle() != nil
}

// FindCycle returns the cycle path if one exists, or nil if no cycle.
func (g *DependencyGraph) FindCycle() []string {
	visited := make(map[string]bool)
	recStack := make(map[string]bool)

	for _, node := range g.nodes {
		if cycle := g.findCycleDFS(node, visited, recStack, nil); cycle != nil {
			return cycle
		}
	}
	return nil
}

func (g *DependencyGraph) findCycleDFS(node string, visited, recStack map[string]bool, path []string) []string {
	if recStack[node] {
		cycleStart := slices.Index(path, node)
		if cycleStart == -1 {
			panic(fmt.Sprintf("cycle detection invariant violated: node %q in recStack but not in path %v", node, path))
		}
		return append(slices.Clone(path[cycleStart:]), node)
	}
	if visited[node] {
		return nil
	}

	visited[node] = true
	recStack[node] = true
	path = append(path, node)

	for _, dep := range g.dependencies[node] {
		if cycle := g.findCycleDFS(dep, visited, recStack, path); cycle != nil {
			return cycle
		}
	}

	recStack[node] = false
	return nil
}

// TopologicalSort returns paths in dependency order (referenced paths first).
// Returns error if graph contains a cycle.
func (g *DependencyGraph) TopologicalSort() ([]string, error) {
	if cycle := g.FindCycle(); cycle != nil {
		return nil, fmt.Errorf("%w: %v", ErrCircularReference, cycle)
	}

	visited := make(map[string]bool)
	result := []string{}

	for _, node := range g.nodes {
		if !visited[node] {
			g.topologicalSortDFS(node, visited, &result)
		}
	}

	return result, nil
}

func (g *DependencyGraph) topologicalSortDFS(node string, visited map[string]bool, stack *[]string) {
	visited[node] = true

	for _, dep := range g.dependencies[node] {
		if !visited[dep] {
			g.topologicalSortDFS(dep, visited, stack)
		}
	}

	*stack = append(*stack, node)
}
