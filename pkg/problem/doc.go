/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package problem defines the in-memory model of a vehicle routing problem
// in the pragmatic format and loads it from files, readers or ConfigMaps.
//
// # Document Layout
//
//	{
//	  "plan": {
//	    "jobs": [{"id": "job1", "deliveries": [{"places": [...], "demand": [1]}]}],
//	    "relations": [{"type": "strict", "jobs": ["departure", "job1"], "vehicleId": "v1"}]
//	  },
//	  "fleet": {
//	    "vehicles": [{"typeId": "t1", "vehicleIds": ["v1"], "profile": "car", "shifts": [...]}],
//	    "profiles": [{"name": "car", "type": "car"}]
//	  },
//	  "objectives": {"primary": [{"type": "minimize-cost"}]}
//	}
//
// Loading only checks that the document has the expected shape. Semantic
// checks live in the validator package, which treats a *Problem as read-only.
package problem
