package extract

// extractionPrompt instructs the model to emit the product table as a strict
// JSON array. The column and quantity explanations mirror the layout of the
// source documents so the model maps cells to the right fields.
const extractionPrompt = `You are given the text of a product-list document (an invoice or delivery list).

The tabular data in the document has these columns:
- product code: the short numeric product code
- product name: the free-text item description
- unit/packaging: the sales unit information (e.g. BOX/12)
- quantity: the quantity token in a special notation
- value: the optional monetary value

The quantity notation uses dots as separators and is interpreted as:
- first segment: number of cartons
- middle segment: number of packs
- last segment: number of pieces

Examples:
1         = 1 carton, 0 packs, 0 pieces
2.012.010 = 2 cartons, 12 packs, 10 pieces
0.009.000 = 0 cartons, 9 packs, 0 pieces
0.000.018 = 0 cartons, 0 packs, 18 pieces

Return ONLY a JSON array of objects, one object per product row, with exactly
these keys:
- "sequence": the row ordinal as printed
- "code": the product code
- "description": the product name
- "unit_packaging": the unit/packaging cell
- "quantity": the quantity token EXACTLY as printed, do not reinterpret it
- "value": the value cell, or an empty string if absent

Do not add commentary before or after the JSON array.`
