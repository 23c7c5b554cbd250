package hugolib

import (
	"time"

	"github.com/sunwei/hugo-taxonomy/resources/page"
)

// Build builds the site from the given content pages, replacing the result
// of any previous Build.
func (s *Site) Build(pages page.Pages) error {
	start := time.Now()
	s.Log.Infoln("Site Build start")

	// collect the content pages
	if err := s.process(pages); err != nil {
		return err
	}

	// based on content pages, create the taxonomy and term pages
	if err := s.assemble(); err != nil {
		return err
	}

	s.Log.Infof("Site Build done in %s: %d pages, %d taxonomy pages",
		time.Since(start).Round(time.Millisecond), s.pages.Len(), s.taxonomies.Len())
	return nil
}

func (s *Site) process(pages page.Pages) error {
	s.pages = NewPageCollection("pages", nil)
	for _, p := range pages {
		if p == nil {
			continue
		}
		if err := s.pages.Add(p); err != nil {
			s.Log.Warnf("skip page: %s", err)
		}
	}
	return nil
}

func (s *Site) assemble() error {
	taxonomies, err := s.taxonomyBuilder.Build(s.pages.Pages())
	if err != nil {
		return err
	}
	s.taxonomies = taxonomies
	return nil
}
