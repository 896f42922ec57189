package docsmcp

// VersionSummary aggregates the chunks of one library version.
type VersionSummary struct {
	Version        string `json:"version"`
	DocumentCount  int    `json:"documentCount"`
	UniqueURLCount int    `json:"uniqueUrlCount"`
}

// LibrarySummary lists the indexed versions of a library.
type LibrarySummary struct {
	Name     string           `json:"name"`
	Versions []VersionSummary `json:"versions"`
}

// ProjectSummary lists the libraries of a project.
type ProjectSummary struct {
	Name      string           `json:"name"`
	Libraries []LibrarySummary `json:"libraries"`
}

// TotalDocuments sums document counts over every library version.
func (p *ProjectSummary) TotalDocuments() int {
	var n int
	for _, lib := range p.Libraries {
		for _, v := range lib.Versions {
			n += v.DocumentCount
		}
	}
	return n
}

// TotalURLs sums unique URL counts over every library version.
func (p *ProjectSummary) TotalURLs() int {
	var n int
	for _, lib := range p.Libraries {
		for _, v := range lib.Versions {
			n += v.UniqueURLCount
		}
	}
	return n
}

// SummarizeProjects folds URL-level statistics into per-project,
// per-library, per-version totals. Content types are merged, and a URL
// indexed under several content types counts once. Rows must be sorted
// by project, library and version, as GroupedStats returns them; the
// output preserves that order.
func SummarizeProjects(rows []StatRow) []ProjectSummary {
	var projects []ProjectSummary
	var urls map[string]struct{}

	for _, row := range rows {
		if row.Project == "" || row.Library == "" {
			continue
		}
		version := row.Version
		if version == "" {
			version = Unversioned
		}

		if n := len(projects); n == 0 || projects[n-1].Name != row.Project {
			projects = append(projects, ProjectSummary{Name: row.Project})
		}
		p := &projects[len(projects)-1]

		if n := len(p.Libraries); n == 0 || p.Libraries[n-1].Name != row.Library {
			p.Libraries = append(p.Libraries, LibrarySummary{Name: row.Library})
		}
		lib := &p.Libraries[len(p.Libraries)-1]

		if n := len(lib.Versions); n == 0 || lib.Versions[n-1].Version != version {
			lib.Versions = append(lib.Versions, VersionSummary{Version: version})
			urls = make(map[string]struct{})
		}
		v := &lib.Versions[len(lib.Versions)-1]

		v.DocumentCount += row.Chunks
		if _, ok := urls[row.URL]; !ok {
			urls[row.URL] = struct{}{}
			v.UniqueURLCount++
		}
	}
	return projects
}

// FindProject returns the summary named name, or nil.
func FindProject(projects []ProjectSummary, name string) *ProjectSummary {
	for i := range projects {
		if projects[i].Name == name {
			return &projects[i]
		}
	}
	return nil
}
