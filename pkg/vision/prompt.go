package vision

// describePrompt asks the model for a structured material inventory of an
// architectural render. The response shape is a request, not a guarantee;
// the core normalizer treats whatever comes back as untrusted.
const describePrompt = `Analyze this architectural render image in detail and identify ALL visible materials and elements.

Please provide a comprehensive analysis including:
- Building facade materials (glass, metal panels, concrete, brick, etc.)
- Ground/road surfaces (asphalt, pavement, grass, etc.)
- Vegetation (trees, plants, landscaping)
- Sky and atmospheric elements
- Lighting conditions (sunlight, shadows, time of day)
- Any other visible materials or textures

For EACH material/element detected, provide:
1. A descriptive name (e.g., "Glass Curtain Wall", "Asphalt Road", "Green Vegetation")
2. Material type (glass/concrete/wood/metal/brick/plaster/asphalt/grass/vegetation/sky/stone)
3. Approximate position in the image (x: 0-100, y: 0-100 where 0,0 is top-left)
4. Dominant color as hex code (e.g., #87CEEB)

Return your response as a single JSON object with this exact format:
{
  "materials": [
    {
      "name": "Glass Facade",
      "type": "glass",
      "x": 50,
      "y": 40,
      "color": "#87CEEB"
    },
    {
      "name": "Asphalt Road",
      "type": "asphalt",
      "x": 50,
      "y": 85,
      "color": "#3C3C3C"
    }
  ],
  "critique": "One paragraph critiquing the realism of the render.",
  "score": 72,
  "suggestions": ["One actionable improvement per entry."]
}

Analyze thoroughly and include at least 5-10 different materials/elements.`
