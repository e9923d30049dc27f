// Package export writes floor plans as JSON documents for external renderers
// and reads them back.
//
// # JSON Format
//
//	{
//	  "id": "5f0c…",
//	  "version": 1,
//	  "prompt": "two exam rooms and a waiting area",
//	  "orientation": "vertical",
//	  "corridor_width": 6,
//	  "wall_thickness": 0.5,
//	  "width": 31,
//	  "height": 20,
//	  "corridor": {"x": 12, "y": 0, "w": 6, "h": 20},
//	  "rooms": [
//	    {"label": "Waiting Area", "type": "waiting area", "side": "W", "x": 0, "y": 0, "w": 12, "h": 12}
//	  ],
//	  "entrance": "N",
//	  "gap": {"side": "N", "x1": 12, "y1": 0, "x2": 18, "y2": 0},
//	  "walls": [ … ],
//	  "canvas": {"width": 360, "height": 250, "offset_x": 25, "offset_y": 25, "scale": 10}
//	}
//
// Coordinates are feet with the interior origin at the top-left corner and y
// growing downward. Walls run along the interior boundary; renderers stroke
// them with wall_thickness centered on the segment. The canvas block is a
// pixel-size hint only.
//
// # Plan IDs
//
// The id is a name-based (v5) UUID over the canonical geometry encoding, so
// identical plans share an ID across runs and machines. See [PlanID].
package export
