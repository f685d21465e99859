package constant

const (
	// UnassignedFolderId is the sentinel folder: it marks a note as not yet
	// categorized and is never offered to the model as a real category.
	UnassignedFolderId   = "unassigned"
	UnassignedFolderName = "unassigned"

	// NoteCategorizedTopic is published after a note is assigned to a folder.
	NoteCategorizedTopic = "NOTE_CATEGORIZED"

	// ContentPreviewLimit caps note content shown in similar-item prompt lines
	// and retrieval previews.
	ContentPreviewLimit = 100

	// SearchResultContentLimit caps the content excerpt inside a single
	// "Similar item" line of the retrieval-augmented prompt.
	SearchResultContentLimit = 80
)

// CategorizePromptTemplate asks the model for exactly one category name for a
// note, given the categories already in the vocabulary.
// Placeholders: {title}, {content}, {categories}.
const CategorizePromptTemplate = `You are a note categorizer. Help me organize my notes by selecting a category based on the title and content.

Use these guidelines:

Choose an existing category from the list if it fits.
If none of the existing categories fit, generate a new one. Make sure the new category is brief and clear.
Provide only the category name - no explanation.
Title: {title}
Content: {content}
Existing Categories: [{categories}]

Category:
`

// CategorizeWithSearchPromptTemplate is the retrieval-augmented variant: the
// prompt additionally shows the categories of the most similar already-indexed
// content. Placeholders: {title}, {content}, {categories}, {search_results}.
const CategorizeWithSearchPromptTemplate = `You are a content categorizer. Help me organize content by selecting the most appropriate category.

Content to categorize:
Title: {title}
Content: {content}

Most similar existing content:
{search_results}

Existing Categories: [{categories}]

Instructions:
1. Choose an existing category if it fits well
2. Create a new category only if necessary (keep it brief)
3. Return ONLY the category name without explanation

Category:
`

// DenseQueryPrefix is prepended to query text before dense embedding; the
// bge family of models retrieves noticeably better with an instruction
// prefix on the query side only.
const DenseQueryPrefix = "Identify the passage most semantically similar to: "
