package gsc

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	maxSitemapBytes    = 10 << 20
	maxChildSitemaps   = 50
	landingPathSegment = "/landing/"
)

// Sitemap reads landing page URLs from the public sitemap.xml. A sitemap
// index is followed one level deep.
type Sitemap struct {
	url    string
	client *http.Client
}

func NewSitemap(baseURL string, client *http.Client) *Sitemap {
	return &Sitemap{url: strings.TrimRight(baseURL, "/") + "/sitemap.xml", client: client}
}

// sitemapDoc decodes both <urlset> and <sitemapindex> documents.
type sitemapDoc struct {
	URLs []struct {
		Loc string `xml:"loc"`
	} `xml:"url"`
	Sitemaps []struct {
		Loc string `xml:"loc"`
	} `xml:"sitemap"`
}

func (s *Sitemap) LandingURLs(ctx context.Context) ([]string, error) {
	root, err := s.fetch(ctx, s.url)
	if err != nil {
		return nil, err
	}
	docs := []*sitemapDoc{root}
	for i, child := range root.Sitemaps {
		if i == maxChildSitemaps {
			break
		}
		doc, err := s.fetch(ctx, strings.TrimSpace(child.Loc))
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	var out []string
	for _, doc := range docs {
		for _, u := range doc.URLs {
			if loc := strings.TrimSpace(u.Loc); strings.Contains(loc, landingPathSegment) {
				out = append(out, loc)
			}
		}
	}
	return out, nil
}

func (s *Sitemap) fetch(ctx context.Context, url string) (*sitemapDoc, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/xml")
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch sitemap %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch sitemap %s: status %d", url, resp.StatusCode)
	}
	var doc sitemapDoc
	if err = xml.NewDecoder(io.LimitReader(resp.Body, maxSitemapBytes)).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse sitemap %s: %w", url, err)
	}
	return &doc, nil
}
