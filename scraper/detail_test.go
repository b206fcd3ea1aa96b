package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const detailPage = `
<html>
<head>
  <meta name="description" content="Learn how for loops work in Python.">
</head>
<body>
<article>
  <div class="post-tags">
    <a>#Python</a>
    <a> #Programming </a>
    <a>Basics</a>
  </div>
  <section class="post-content">
    <p>For loops are one of the most useful constructs in Python.</p>
    <p>This second paragraph should not be extracted.</p>
  </section>
</article>
</body></html>
`

const detailPageNoExtras = `
<html><head><title>Bare Post</title></head>
<body><div class="post-header">Bare Post</div></body></html>
`

// TestExtractDetail_AllFields verifies categories, description and the
// first body paragraph are extracted, with tag markers stripped.
func TestExtractDetail_AllFields(t *testing.T) {
	strategy := testStrategy(t, "https://stackabuse.com")
	doc := parseTestDocument(t, detailPage)

	detail, err := strategy.ExtractDetail(doc)

	require.NoError(t, err)
	assert.Equal(t, []string{"Python", "Programming", "Basics"}, detail.Categories)
	assert.Equal(t, "Learn how for loops work in Python.", detail.Description)
	assert.Equal(t, "For loops are one of the most useful constructs in Python.", detail.Content)
}

const chromeOnlyDetailPage = `
<html><head><title>Redesigned Post</title></head>
<body>
<div class="site-header">Stack Abuse — Learn Python, Java, JavaScript and more</div>
<nav class="site-nav">Home About Courses Write for us Newsletter Privacy</nav>
<div class="post-header">Redesigned Post With No Body Paragraphs Anywhere</div>
<footer class="site-footer">Copyright, terms of service and a lot of other boilerplate text.</footer>
</body></html>
`

// TestExtractDetail_MissingEverything verifies a page without tags,
// description or body paragraphs degrades to empty fields instead of
// failing.
func TestExtractDetail_MissingEverything(t *testing.T) {
	strategy := testStrategy(t, "https://stackabuse.com")
	doc := parseTestDocument(t, detailPageNoExtras)

	detail, err := strategy.ExtractDetail(doc)

	require.NoError(t, err)
	assert.Empty(t, detail.Categories)
	assert.Empty(t, detail.Description)
	assert.Empty(t, detail.Content)
}

// TestExtractDetail_CustomDescriptionSelector verifies the synopsis source
// is profile-driven like every other selector.
func TestExtractDetail_CustomDescriptionSelector(t *testing.T) {
	profile := StackAbuseProfile()
	profile.DescriptionSelector = "meta[property='og:description']"
	strategy, err := NewHTMLStrategy(profile, nil)
	require.NoError(t, err)

	doc := parseTestDocument(t, `
<html><head>
  <meta name="description" content="The old synopsis location.">
  <meta property="og:description" content="The redesigned synopsis location.">
</head><body></body></html>`)

	detail, err := strategy.ExtractDetail(doc)

	require.NoError(t, err)
	assert.Equal(t, "The redesigned synopsis location.", detail.Description)
}

// TestExtractDetail_ChromeOnlyPage verifies a page whose only text is
// headers, navigation and a footer yields empty content instead of having
// that chrome promoted to the body.
func TestExtractDetail_ChromeOnlyPage(t *testing.T) {
	strategy := testStrategy(t, "https://stackabuse.com")
	doc := parseTestDocument(t, chromeOnlyDetailPage)

	detail, err := strategy.ExtractDetail(doc)

	require.NoError(t, err)
	assert.Empty(t, detail.Content)
}
