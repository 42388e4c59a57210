// Package content holds the build-time-fixed article catalog data. The site
// ships its editorial content compiled into the binary, there is no CMS or
// database behind the article section.
package content

import (
	"time"

	"github.com/lumioapp/lumio-site-manager/internal/entity"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

// Authors returns the static author list.
func Authors() []entity.Author {
	return []entity.Author{
		{Id: 1, Name: "Nora Feld", Slug: "nora-feld", Bio: "Head of content at Lumio. Writes about the creator economy."},
		{Id: 2, Name: "Jonas Brekke", Slug: "jonas-brekke", Bio: "Partnerships lead, previously ran influencer programs at two DTC brands."},
		{Id: 3, Name: "Ava Ricci", Slug: "ava-ricci", Bio: "Product marketing at Lumio."},
	}
}

// Categories returns the static category list.
func Categories() []entity.ArticleCategory {
	return []entity.ArticleCategory{
		{Id: 1, Name: "Guides", Slug: "guides", Description: "Practical how-tos for creators and brands."},
		{Id: 2, Name: "Product", Slug: "product", Description: "What we are building and why."},
		{Id: 3, Name: "Creator Stories", Slug: "creator-stories", Description: "Conversations with creators on the platform."},
		{Id: 4, Name: "Industry", Slug: "industry", Description: "Trends and analysis from the creator economy."},
	}
}

// Tags returns the static tag list.
func Tags() []entity.ArticleTag {
	return []entity.ArticleTag{
		{Id: 1, Name: "Creators", Slug: "creators"},
		{Id: 2, Name: "Brands", Slug: "brands"},
		{Id: 3, Name: "Partnerships", Slug: "partnerships"},
		{Id: 4, Name: "Monetization", Slug: "monetization"},
		{Id: 5, Name: "Launch", Slug: "launch"},
		{Id: 6, Name: "Behind the Scenes", Slug: "behind-the-scenes"},
	}
}

// Articles returns the static article list, drafts included. The catalog
// service filters visibility.
func Articles() []entity.Article {
	return []entity.Article{
		{
			Id:      1,
			Title:   "Why We're Building Lumio",
			Slug:    "why-were-building-lumio",
			Summary: "Brand deals shouldn't depend on who you know. Lumio matches creators and brands on fit, not follower count.",
			Content: `# Why We're Building Lumio

The creator economy has a discovery problem. Brands spend weeks hunting for
creators in spreadsheets, creators pitch into the void, and the deals that do
happen are mostly a function of *who already knows whom*.

## What we believe

- Fit beats reach. A 20k-follower creator with the right audience outperforms
  a generic million-follower placement.
- Both sides deserve leverage. Creators should see briefs, not cold DMs.
- Matching is a data problem, and data problems are solvable.

> We're not building another marketplace for sponsored posts. We're building
> the matching layer the industry is missing.

If that resonates, [join the waitlist](https://lumio.app) and we'll be in
touch before launch.`,
			PublishedAt:    date(2025, time.March, 12),
			Hero:           entity.Image{URL: "https://cdn.lumio.app/articles/why-lumio.jpg", Alt: "Two people reviewing a campaign brief"},
			AuthorId:       1,
			CategoryId:     2,
			TagIds:         []int{1, 2, 5},
			ReadingMinutes: 4,
			Featured:       true,
			Status:         entity.ArticleStatusPublished,
			SEO: &entity.SEO{
				Title:       "Why We're Building Lumio — the creator-brand matching layer",
				Description: "The story behind Lumio and the discovery problem in the creator economy.",
				Keywords:    []string{"creator economy", "brand deals", "lumio"},
			},
		},
		{
			Id:      2,
			Title:   "How to Write a Brand Brief Creators Actually Answer",
			Slug:    "brand-brief-creators-answer",
			Summary: "Most briefs read like legal documents. Here is the structure we see working across hundreds of campaigns.",
			Content: `# How to Write a Brand Brief Creators Actually Answer

A good brief is short, specific and honest about money.

## The structure

1. One sentence on the product and the audience you want.
2. Deliverables, stated as outcomes, not formats.
3. Budget range. Always. Briefs without a range get half the responses.
4. Creative freedom: what is fixed, what is up to the creator.

| Section | Length |
|---------|--------|
| Product | 1-2 sentences |
| Deliverables | 3 bullets |
| Budget | 1 line |

**Do not** paste your brand guidelines into the brief. Link them.`,
			PublishedAt:    date(2025, time.April, 2),
			Hero:           entity.Image{URL: "https://cdn.lumio.app/articles/brand-brief.jpg", Alt: "A laptop showing a campaign brief", Caption: "The brief template inside Lumio"},
			AuthorId:       2,
			CategoryId:     1,
			TagIds:         []int{2, 3},
			ReadingMinutes: 6,
			Status:         entity.ArticleStatusPublished,
		},
		{
			Id:      3,
			Title:   "Creator Story: How Rhea Turned 30k Followers Into a Full-Time Income",
			Slug:    "creator-story-rhea",
			Summary: "Rhea runs a niche home-workshop channel. She shares the numbers behind going full time.",
			Content: `# Creator Story: Rhea

Rhea's channel covers small-space woodworking. Thirty thousand followers,
four brand partners, full-time income.

> The turning point was saying no to one-off posts. Everything I do now is a
> three-month minimum.
>
> Brands get better results, and I can actually plan my life.

Her advice for creators starting out:

- Pick partners whose products you already use.
- Price per outcome, not per post.
- Keep a media kit updated *before* anyone asks for it.`,
			PublishedAt:    date(2025, time.April, 24),
			UpdatedAt:      datePtr(2025, time.May, 3),
			Hero:           entity.Image{URL: "https://cdn.lumio.app/articles/rhea.jpg", Alt: "Rhea in her workshop"},
			AuthorId:       1,
			CategoryId:     3,
			TagIds:         []int{1, 4},
			ReadingMinutes: 8,
			Featured:       true,
			Status:         entity.ArticleStatusPublished,
		},
		{
			Id:      4,
			Title:   "The State of Creator Partnerships in 2025",
			Slug:    "state-of-creator-partnerships-2025",
			Summary: "Longer deals, smaller rosters, more performance pay. What we learned from talking to 120 brands.",
			Content: `# The State of Creator Partnerships in 2025

We interviewed 120 brand-side marketers. Three shifts stand out.

## 1. Rosters are shrinking

Brands are cutting one-off placements and concentrating spend on fewer,
longer relationships.

## 2. Performance pay is rising

Flat fees still dominate, but over a third of brands now blend a flat fee
with an affiliate or conversion component.

## 3. Sourcing is still broken

The average brand looks at ` + "`5 tools`" + ` and a spreadsheet to find partners.
That is the gap we are closing.`,
			PublishedAt:    date(2025, time.May, 15),
			Hero:           entity.Image{URL: "https://cdn.lumio.app/articles/state-2025.jpg", Alt: "Chart of partnership spend by year"},
			AuthorId:       2,
			CategoryId:     4,
			TagIds:         []int{2, 3, 4},
			ReadingMinutes: 11,
			Status:         entity.ArticleStatusPublished,
			RelatedIds:     []int{2, 1},
		},
		{
			Id:      5,
			Title:   "Inside the Waitlist: What Happens After You Sign Up",
			Slug:    "inside-the-waitlist",
			Summary: "We review every signup by hand. Here is what we look for and when you'll hear from us.",
			Content: `# Inside the Waitlist

Every waitlist signup is reviewed by a person. Creators are matched on
audience fit, brands on brief quality.

## Timeline

- Week 1: confirmation email and a short profile review.
- Week 2-4: early access invitations roll out in batches.

No spam, no reselling your email, ever.`,
			PublishedAt:    date(2025, time.June, 1),
			Hero:           entity.Image{URL: "https://cdn.lumio.app/articles/waitlist.jpg", Alt: "The Lumio waitlist dashboard"},
			AuthorId:       3,
			CategoryId:     2,
			TagIds:         []int{5, 6},
			ReadingMinutes: 3,
			Featured:       true,
			Status:         entity.ArticleStatusPublished,
		},
		{
			Id:      6,
			Title:   "Pricing Your First Brand Deal",
			Slug:    "pricing-your-first-brand-deal",
			Summary: "A starting framework for creators who have never quoted a number before.",
			Content: `# Pricing Your First Brand Deal

The first number is the hardest. Start from your engaged reach, not your
follower count.

1. Take your median views over the last ten posts.
2. Multiply by a category rate. Niche technical content commands more.
3. Add for usage rights, exclusivity and whitelisting. Each is a separate
   line item.

**Never** quote before you've seen the budget range. On Lumio the range is
always in the brief.`,
			PublishedAt:    date(2025, time.June, 18),
			Hero:           entity.Image{URL: "https://cdn.lumio.app/articles/pricing.jpg", Alt: "Calculator and notebook on a desk"},
			AuthorId:       1,
			CategoryId:     1,
			TagIds:         []int{1, 4},
			ReadingMinutes: 7,
			Status:         entity.ArticleStatusPublished,
		},
		{
			Id:      7,
			Title:   "Creator Story: Draft Interview",
			Slug:    "creator-story-draft",
			Summary: "Unpublished interview, held back until the embargo lifts.",
			Content: `# Draft

Not yet published.`,
			PublishedAt:    date(2025, time.July, 1),
			Hero:           entity.Image{URL: "https://cdn.lumio.app/articles/draft.jpg", Alt: "Placeholder"},
			AuthorId:       3,
			CategoryId:     3,
			TagIds:         []int{1},
			ReadingMinutes: 5,
			Status:         entity.ArticleStatusDraft,
		},
	}
}
