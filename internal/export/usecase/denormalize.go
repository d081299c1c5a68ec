package usecase

import "todoist-export/pkg/todoist"

// resolveProjectNames replaces each item's numeric project reference
// with the matching project's display name. Unresolved ids become nil.
// The lookup map is built from the same snapshot the items belong to,
// so a second pass is a no-op: resolved values are strings and no
// longer match any integer key.
func resolveProjectNames(s *todoist.Snapshot) []*todoist.Item {
	names := make(map[int64]string, len(s.Projects))
	for _, p := range s.Projects {
		names[p.ID] = p.Name
	}

	for _, item := range s.Items {
		item.ProjectID = resolveRef(item.ProjectID, names)
	}
	return s.Items
}

// resolveUserNames replaces the three user-role references (assigner,
// adder, owner) with collaborator display names. Unresolved ids become
// nil — an explicit absence marker, never the raw numeric id.
func resolveUserNames(s *todoist.Snapshot) []*todoist.Item {
	names := make(map[int64]string, len(s.Collaborators))
	for _, c := range s.Collaborators {
		names[c.ID] = c.FullName
	}

	for _, item := range s.Items {
		item.AssignedByUID = resolveRef(item.AssignedByUID, names)
		item.AddedByUID = resolveRef(item.AddedByUID, names)
		item.ResponsibleUID = resolveRef(item.ResponsibleUID, names)
	}
	return s.Items
}

// resolveRef maps one reference field through the id→name table.
// Non-numeric values (nil, or names from a previous pass) pass through
// untouched.
func resolveRef(ref any, names map[int64]string) any {
	id, ok := todoist.RefID(ref)
	if !ok {
		return ref
	}
	name, ok := names[id]
	if !ok {
		return nil
	}
	return name
}
