/*
 * doc.go, part of chemovie.
 *
 * Copyright 2026 Raul Mera rauldotmeraatusachdotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

/*Package chemovie assembles ordered sequences of molecular structure
snapshots ("frames") into trajectories, and drives their playback and
recording.

	**chemovie capabilities**

    Discovers, orders and subsamples sets of structure files, turning
	them into a trajectory of frames.

    Pre-aligns the whole file set with an external structural-alignment
	tool before loading, falling back to the unaligned originals if the
	tool is missing or fails.

    Sequentially aligns loaded frames by rigid-body superposition of a
	selected chain, chaining the per-pair transformations cumulatively
	from the first frame.

    Plays trajectories back at 1-30 frames per second, with frame
	stepping, skipping, looping and scrubbing.

    Records playback (or free interaction) into a video file, spooling
	captured frames to disk and encoding them with an external encoder,
	so a recording stopped at any point still yields a playable file.

The package itself holds the trajectory data model and the frame
loader. Playback lives in chemovie/play, alignment in chemovie/align,
recording in chemovie/movie and a plot-based reference renderer in
chemovie/chemplot.
*/
package chemovie
