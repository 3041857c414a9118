package ptt

import (
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Board article ids look like M.1701234567.A.123 and are embedded in the
// article URL.
var boardIDPattern = regexp.MustCompile(`/([A-Z]\.\d+\.[A-Z]\.[A-Z0-9]+)\.html`)

// PTT renders post times like "Fri Dec  6 01:23:45 2024".
const postTimeLayout = "Mon Jan _2 15:04:05 2006"

type listEntry struct {
	BoardID string
	Title   string
	Author  string
	URL     string
}

// parseBoardIndex extracts the article entries of one board index page.
// Deleted posts have no title link and come back with an empty BoardID.
func parseBoardIndex(doc *goquery.Document, baseURL string) []listEntry {
	var entries []listEntry

	doc.Find("div.r-ent").Each(func(_ int, sel *goquery.Selection) {
		titleLink := sel.Find("div.title a").First()
		if titleLink.Length() == 0 {
			return
		}

		href, _ := titleLink.Attr("href")
		if href != "" && !strings.HasPrefix(href, "http") {
			href = baseURL + href
		}

		entries = append(entries, listEntry{
			BoardID: extractBoardID(href),
			Title:   strings.TrimSpace(titleLink.Text()),
			Author:  strings.TrimSpace(sel.Find("div.meta div.author").Text()),
			URL:     href,
		})
	})

	return entries
}

type articlePage struct {
	Author   string
	Content  string
	PostedAt *time.Time
}

// parseArticlePage extracts author, body text and post time from an article
// page. Meta lines, push comments and the signature are stripped from the
// body the way the board renders them.
func parseArticlePage(doc *goquery.Document, loc *time.Location) articlePage {
	var page articlePage

	doc.Find("div.article-metaline").Each(func(_ int, sel *goquery.Selection) {
		tag := strings.TrimSpace(sel.Find("span.article-meta-tag").Text())
		value := strings.TrimSpace(sel.Find("span.article-meta-value").Text())

		switch tag {
		case "作者":
			// "author (nickname)" -> "author"
			page.Author = strings.TrimSpace(strings.SplitN(value, "(", 2)[0])
		case "時間":
			page.PostedAt = parsePostTime(value, loc)
		}
	})

	main := doc.Find("div#main-content").First()
	if main.Length() == 0 {
		return page
	}

	main.Find("div.article-metaline, div.article-metaline-right, div.push").Remove()

	content := main.Text()
	if idx := strings.Index(content, "\n--\n"); idx >= 0 {
		content = content[:idx]
	}
	page.Content = strings.TrimSpace(content)

	return page
}

func extractBoardID(rawURL string) string {
	m := boardIDPattern.FindStringSubmatch(rawURL)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

func parsePostTime(value string, loc *time.Location) *time.Time {
	t, err := time.ParseInLocation(postTimeLayout, value, loc)
	if err != nil {
		return nil
	}
	return &t
}
