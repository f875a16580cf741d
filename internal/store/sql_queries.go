// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The guitar.io Authors

package store

const (
	selectCatalogState = `
		SELECT
			id,
			created_at
		FROM exercises;`

	insertExercise = `
		INSERT INTO exercises (
			id,
			title,
			description,
			difficulty,
			category,
			image_path,
			created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?);`

	updateExercise = `
		UPDATE exercises SET
			title       = ?,
			description = ?,
			difficulty  = ?,
			category    = ?,
			image_path  = ?
		WHERE id = ?;`

	deleteExercise = `
		DELETE FROM exercises
		WHERE id = ?;`
)
