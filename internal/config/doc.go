// Package config loads converter settings from YAML with an environment
// overlay.
//
// Example config file:
//
//	collections:
//	  - Track
//	  - EFlowTrack
//	  - _
//	  - ParticleID
//	  - ParticleIDs
//	  - _
//	  - ReconstructedParticle
//	  - PandoraPFOs
//	  - _
//	run_number: 1
//	resolution: value
//	track_covariance: diagonal
//	vertex_algorithms:
//	  1: PrimaryVertexFinder
//	log_level: info
//	log_format: text
//	output: ./out
//
// Every scalar field can be overridden by an EDM4HEP2LCIO_ prefixed
// environment variable, e.g. EDM4HEP2LCIO_LOG_LEVEL=debug. Collections
// are given there as a comma separated token list.
package config
