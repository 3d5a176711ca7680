package analysis

import (
	"fmt"
	"strings"
)

// singleShotPrompt asks for a complete analysis of one uploaded document.
const singleShotPrompt = `Analyze the uploaded knitting pattern and return the following information as exact JSON:

{
    "projectName": "the pattern's name, or your best guess",
    "parts": [
        {
            "partName": "part name (e.g. front, back, sleeve, body)",
            "targetRow": target row count (number only),
            "stitchGuide": [
                {
                    "row": row number,
                    "targetStitch": target stitch count at that row
                }
            ]
        }
    ]
}

Rules:
- Express every number as a plain integer
- stitchGuide is an array of per-row stitch counts
- Follow the JSON shape exactly`

// pagePrompt asks for a partial analysis of one page out of a larger
// document. Part names are tagged with the page number so consolidation
// can merge parts that span pages.
func pagePrompt(pageNumber, totalPages int) string {
	return fmt.Sprintf(`This is page %[1]d of %[2]d of a knitting pattern.

**Important instructions**:
1. Extract only the parts visible on this page
2. Append " (page %[1]d)" to every part name
3. Partial information is fine
4. If the page only shows photos or material lists, respond with parts: []
5. If there is a chart or diagram, analyze it as precisely as you can
6. The 'row' value must be a single integer. When the pattern writes a range like "rows 34~37" or "rows 50~51", emit one object per row: row: 34, row: 35, ..., row: 37. Never use range notation or strings where a number belongs.

Output as JSON:
{
    "projectName": "estimated name of the whole project",
    "parts": [
        {
            "partName": "part name (page %[1]d)",
            "targetRow": target row count or null,
            "stitchGuide": [
                {
                    "row": row number or null,
                    "targetStitch": stitch count or null
                }
            ]
        }
    ]
}

Example input:
- "rows 1~3: 80 sts"
- "row 5: 75 sts"

Example output (JSON):
[
  {"row": 1, "targetStitch": 80},
  {"row": 2, "targetStitch": 80},
  {"row": 3, "targetStitch": 80},
  {"row": 5, "targetStitch": 75}
]

Note: null values are allowed, but extract as much concrete information as possible.`, pageNumber, totalPages)
}

// consolidationPrompt merges the per-page results into one analysis.
func consolidationPrompt(pageResults []string, originalFileName string) string {
	return fmt.Sprintf(`Below are the per-page analysis results of the knitting pattern document %q:

%s

**Perform the consolidation**:
1. Merge identical parts (e.g. "Back (page 3)" + "Back (page 7)" -> "Back")
2. Remove duplicate parts and combine their information
3. Sort each stitchGuide and remove duplicate rows
4. Strip every "(page N)" tag
5. Keep only the essential parts, dropping the rest
6. Choose the most specific, meaningful project name

**Quality bar**:
- 3 to 8 final parts is the right range
- Every part must have a clear purpose
- Remove duplicated information thoroughly
- Replace null values with sensible defaults

Final JSON output:
{
    "projectName": "final project name",
    "parts": [
        {
            "partName": "merged part name",
            "targetRow": target row count,
            "stitchGuide": [
                {
                    "row": row number,
                    "targetStitch": stitch count
                }
            ]
        }
    ]
}`, originalFileName, strings.Join(pageResults, "\n\n"))
}
