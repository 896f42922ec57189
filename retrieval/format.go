package retrieval

import (
	"fmt"
	"slices"
	"strings"

	"github.com/fwojciec/docsmcp"
)

const resultSeparator = "------------------------------------------------------------"

// noURL labels chunks stored without a source URL.
const noURL = "(no-url)"

func formatError(err error) string {
	return "Error: " + docsmcp.ErrorMessage(err)
}

func formatResults(results []docsmcp.SearchResult) string {
	var b strings.Builder
	for i, r := range results {
		url := r.Chunk.URL
		if url == "" {
			url = noURL
		}
		fmt.Fprintf(&b, "%s\nResult %d: %s\n\n%s\n", resultSeparator, i+1, url, r.Chunk.Text)
	}
	return b.String()
}

func formatNoResults(req SearchRequest) string {
	version := req.Version
	if version == "" {
		version = "any"
	}
	return fmt.Sprintf("No results for '%s' in project=%s, library=%s, version=%s, content_type=%s.",
		req.Query, req.Project, req.Library, version, req.ContentType)
}

func writeVersions(b *strings.Builder, versions []docsmcp.VersionSummary) {
	for _, v := range versions {
		fmt.Fprintf(b, "    - v%s: %d docs, %d URLs\n", v.Version, v.DocumentCount, v.UniqueURLCount)
	}
}

func formatProjects(projects []docsmcp.ProjectSummary) string {
	if len(projects) == 0 {
		return "No projects indexed yet. Use scrape_docs to create your first project!"
	}

	var b strings.Builder
	b.WriteString("Indexed Projects:\n\n")
	for _, p := range projects {
		fmt.Fprintf(&b, "**%s**\n", p.Name)
		for _, lib := range p.Libraries {
			fmt.Fprintf(&b, "  %s:\n", lib.Name)
			writeVersions(&b, lib.Versions)
		}
		fmt.Fprintf(&b, "  **Total**: %d docs, %d URLs\n\n", p.TotalDocuments(), p.TotalURLs())
	}
	return b.String()
}

func formatCheckProject(name string, p *docsmcp.ProjectSummary) string {
	if p == nil {
		return fmt.Sprintf("Project '%s' does not exist yet.\n\nYou can create it by using scrape_docs with this project name.", name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Project '%s' exists!\n\n", name)
	b.WriteString("**Libraries in this project:**\n")
	for _, lib := range p.Libraries {
		fmt.Fprintf(&b, "  - %s:\n", lib.Name)
		writeVersions(&b, lib.Versions)
	}
	return b.String()
}

type libraryEntry struct {
	project string
	version docsmcp.VersionSummary
}

func formatLibraries(projects []docsmcp.ProjectSummary, project string) string {
	if len(projects) == 0 {
		return "No libraries indexed yet. Use scrape_docs to index your first library!"
	}

	header := "**Libraries across all projects:**\n\n"
	if project != "" {
		p := docsmcp.FindProject(projects, project)
		if p == nil {
			return fmt.Sprintf("Project '%s' not found. Use list_projects() to see available projects.", project)
		}
		projects = []docsmcp.ProjectSummary{*p}
		header = fmt.Sprintf("**Libraries in project %s:**\n\n", project)
	}

	libraries := make(map[string][]libraryEntry)
	for _, p := range projects {
		for _, lib := range p.Libraries {
			for _, v := range lib.Versions {
				libraries[lib.Name] = append(libraries[lib.Name], libraryEntry{project: p.Name, version: v})
			}
		}
	}
	names := make([]string, 0, len(libraries))
	for name := range libraries {
		names = append(names, name)
	}
	slices.Sort(names)

	var b strings.Builder
	b.WriteString(header)
	for _, name := range names {
		fmt.Fprintf(&b, "**%s**\n", name)
		for _, e := range libraries[name] {
			fmt.Fprintf(&b, "  - Project: %s, Version: %s, Docs: %d, URLs: %d\n",
				e.project, e.version.Version, e.version.DocumentCount, e.version.UniqueURLCount)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func formatNoVersions(project, library, contentType string) string {
	return fmt.Sprintf("No versions found for %s in project=%s [%s].", library, project, contentType)
}

func formatNoVersionMatch(project, library, contentType, target string, versions []string) string {
	return fmt.Sprintf("No match for \"%s\" in %s (project=%s, %s). Available: %s",
		target, library, project, contentType, strings.Join(versions, ", "))
}

func formatRemoved(n int, project, library, version, contentType string) string {
	if version == "" {
		version = docsmcp.Unversioned
	}
	return fmt.Sprintf("Removed %d chunks for project=%s, %s@%s [%s]", n, project, library, version, contentType)
}

func formatFetched(resp *docsmcp.Response, normalizer docsmcp.Normalizer) string {
	if !resp.OK() {
		return fmt.Sprintf("Failed to fetch URL (status %d).", resp.StatusCode)
	}
	if resp.IsHTML() {
		return normalizer.Normalize(string(resp.Body)).Markdown
	}
	if len(resp.Body) > 0 {
		return strings.ToValidUTF8(string(resp.Body), "")
	}
	return fmt.Sprintf("[%d bytes]", len(resp.Body))
}

func formatDetailedStats(rows []docsmcp.StatRow, project, library, version string) string {
	if len(rows) == 0 {
		var filters []string
		if project != "" {
			filters = append(filters, "project="+project)
		}
		if library != "" {
			filters = append(filters, "library="+library)
		}
		if version != "" {
			filters = append(filters, "version="+version)
		}
		if len(filters) == 0 {
			return "No data found."
		}
		return fmt.Sprintf("No data found with filters: %s.", strings.Join(filters, ", "))
	}

	var b strings.Builder
	b.WriteString("**Detailed Statistics**\n\n")

	var filters []string
	if project != "" {
		filters = append(filters, "Project: "+project)
	}
	if library != "" {
		filters = append(filters, "Library: "+library)
	}
	if version != "" {
		filters = append(filters, "Version: "+version)
	}
	if len(filters) > 0 {
		fmt.Fprintf(&b, "**Filters**: %s\n\n", strings.Join(filters, ", "))
	}

	// Each level restarts when its parent changes; a blank line separates
	// sibling groups.
	var cur struct {
		project, library, version, contentType string
		started                                [4]bool
	}
	for _, r := range rows {
		ver := r.Version
		if ver == "" {
			ver = docsmcp.Unversioned
		}
		url := r.URL
		if url == "" {
			url = noURL
		}

		if !cur.started[0] || r.Project != cur.project {
			if cur.started[0] {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "**Project: %s**\n", r.Project)
			cur.project, cur.started[0], cur.started[1] = r.Project, true, false
		}
		if !cur.started[1] || r.Library != cur.library {
			if cur.started[1] {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "  **Library: %s**\n", r.Library)
			cur.library, cur.started[1], cur.started[2] = r.Library, true, false
		}
		if !cur.started[2] || ver != cur.version {
			if cur.started[2] {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "    **Version: %s**\n", ver)
			cur.version, cur.started[2], cur.started[3] = ver, true, false
		}
		if !cur.started[3] || r.ContentType != cur.contentType {
			if cur.started[3] {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "      **Content Type: %s**\n", r.ContentType)
			cur.contentType, cur.started[3] = r.ContentType, true
		}
		fmt.Fprintf(&b, "        %s: %d chunks\n", url, r.Chunks)
	}
	return b.String()
}
