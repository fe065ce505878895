// Package grammar reads and writes grammars as YAML documents.
//
// A document lists declarations and, optionally, the roots to normalize:
//
//	version: "1"
//	roots: [Cart]
//	declarations:
//	  - name: Cart
//	    body:
//	      product:
//	        items: {array: {ref: Item}}
//	  - name: FountainDrink
//	    params:
//	      - name: NAME
//	        extends: {ref: DrinkNames}
//	      - name: SIZE
//	        extends: {ref: DrinkSizes}
//	    body:
//	      product:
//	        name: {param: NAME}
//	        size: {param: SIZE}
//	        options?: {array: {ref: Ice}}
//	  - name: Condiment
//	    body:
//	      - Ketchup
//	      - literal: {value: Mayo, aliases: [mayonnaise, hellmanns], default: false}
//
// Expressions are encoded as described on DecodeExpr. Normalized results are
// written back as an Output holding each root's compact text, its tree in
// the same expression encoding, and the alias index.
package grammar
