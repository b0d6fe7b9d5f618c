// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jlazy

import "errors"

// SkipChildren may be returned by the visitor function of Walk to prevent
// Walk from visiting the children of the current node.
var SkipChildren = errors.New("skip children")

// Walk visits n and each of its descendants in source order, visiting each
// node before its children. If visit reports SkipChildren, the children of
// that node are not visited and the walk continues. If visit reports any other
// error, the walk stops and Walk returns that error.
//
// Each child visited is indexed when it is reached, so a walk that descends
// through a whole document does the work of a complete parse. Use SkipChildren
// to confine the walk to the parts of interest.
func Walk(n *Node, visit func(*Node) error) error {
	err := walk(n, visit)
	if err == SkipChildren {
		return nil
	}
	return err
}

func walk(n *Node, visit func(*Node) error) error {
	if err := visit(n); err != nil {
		return err
	}
	for i := range n.kids {
		if err := walk(n.child(i), visit); err != nil && err != SkipChildren {
			return err
		}
	}
	return nil
}
